package klv

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"encoding/hex"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	itoa     func(int) string                    = strconv.Itoa
	fmtUint  func(uint64, int) string             = strconv.FormatUint
	fmtInt   func(int64, int) string              = strconv.FormatInt
	fmtFloat func(float64, byte, int, int) string = strconv.FormatFloat
	hexstr   func([]byte) string                  = hex.EncodeToString
)

func newStrBuilder() strings.Builder { return strings.Builder{} }
