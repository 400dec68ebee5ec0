package utils

import (
	"math/rand"
	"strconv"
	"time"
)

const entityIDSuffixLen = 4

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewEntityID synthesizes a note/task id: the current Unix time in
// milliseconds plus a short random base36 suffix. The suffix keeps ids from
// two devices writing in the same millisecond apart; the remaining collision
// probability is accepted as negligible, not eliminated.
func NewEntityID() string {
	suffix := make([]byte, entityIDSuffixLen)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}

	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + string(suffix)
}
