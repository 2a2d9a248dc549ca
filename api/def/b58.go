package def

import (
	"math/big"
)

// bitcoin flavor alphabet: no 0/O, no I/l.
const b58chars = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var b58radix = big.NewInt(58)

func b58encode(data []byte) string {
	// count leading zero bytes; they map to '1' runs.
	zeroes := 0
	for zeroes < len(data) && data[zeroes] == 0 {
		zeroes++
	}

	num := new(big.Int).SetBytes(data)
	mod := new(big.Int)
	// worst case expansion is ~138%.
	out := make([]byte, 0, len(data)*138/100+1)
	for num.Sign() > 0 {
		num.DivMod(num, b58radix, mod)
		out = append(out, b58chars[mod.Int64()])
	}
	for i := 0; i < zeroes; i++ {
		out = append(out, b58chars[0])
	}
	// digits came out little-endian; flip.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
