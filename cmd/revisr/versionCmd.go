package main

import (
	"fmt"
	"io"

	"go.polydawn.net/revisr/cmd/revisr/version"
)

func VersionCmd(stdout io.Writer) error {
	_, err := fmt.Fprintf(stdout,
		"revisr\n commit: %s\n date:   %s\n",
		version.GitCommit, version.GitCommitDate)
	return err
}
