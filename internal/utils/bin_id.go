package utils

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strconv"
	"time"
)

const (
	binIDAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	binIDRandomSuffix = 10
)

// binIDPattern is the accepted shape of a bin identifier.
var binIDPattern = regexp.MustCompile(`^[0-9a-z]{8,64}$`)

// NewBinID returns a bin identifier made of the base36 unix-millis timestamp
// followed by random base36 characters.
func NewBinID(now time.Time) string {
	id := strconv.FormatInt(now.UnixMilli(), 36)

	suffix := make([]byte, binIDRandomSuffix)
	max := big.NewInt(int64(len(binIDAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand never fails on supported platforms
			panic(err)
		}
		suffix[i] = binIDAlphabet[n.Int64()]
	}

	return id + string(suffix)
}

// IsValidBinID reports whether id has the shape produced by NewBinID.
func IsValidBinID(id string) bool {
	return binIDPattern.MatchString(id)
}
