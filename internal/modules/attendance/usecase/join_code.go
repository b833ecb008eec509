package usecase

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	minJoinCode = 100000
	maxJoinCode = 999999
)

var joinCodeSpan = big.NewInt(maxJoinCode - minJoinCode + 1)

// GenerateJoinCode uniform random 6 digit code in [100000, 999999], not unique across participant
func GenerateJoinCode() (string, error) {
	n, err := rand.Int(rand.Reader, joinCodeSpan)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+minJoinCode, 10), nil
}
