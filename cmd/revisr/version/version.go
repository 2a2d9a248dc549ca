package version

/*
	Values injected by 'ldflags' -- these vars will be the "unknown" value
	unless the build script supplies real ones at compile time.
*/
var (
	GitCommit     string = "!!unknown!!"
	GitCommitDate string = "!!unknown!!"
)
