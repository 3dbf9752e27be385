package encoder

import (
	"fmt"
	"math/big"
	"strings"
)

var (
	punctChars = []byte(";<>@[\\]_`~!\r\t,:\n-.$/\"|*()?{}'")
	mixedChars = []byte("0123456789&\r\t,:#-.$/+%*=^")
)

// decompact decodes data codewords back into bytes. It understands the
// subset of the codeword stream EncodeData produces.
func decompact(codewords []int) ([]byte, error) {
	var out []byte
	mode := LatchToText
	for i := 0; i < len(codewords); {
		switch cw := codewords[i]; cw {
		case LatchToText, LatchToBytePadded, LatchToByte, LatchToNumeric:
			mode = cw
			i++
			continue
		case ECICharset, ECIUserDefined:
			i += 2
			continue
		case ECIGeneralPurpose:
			i += 3
			continue
		}
		j := i
		for j < len(codewords) && codewords[j] < LatchToText {
			j++
		}
		run := codewords[i:j]
		var err error
		switch mode {
		case LatchToText:
			out = append(out, decodeText(run)...)
		case LatchToByte, LatchToBytePadded:
			out, err = decodeBytes(out, run, mode)
		case LatchToNumeric:
			out, err = decodeNumeric(out, run)
		}
		if err != nil {
			return nil, err
		}
		i = j
	}
	return out, nil
}

func decodeText(run []int) []byte {
	var out []byte
	const (
		alpha = iota
		lower
		mixedMode
		punct
	)
	submode := alpha
	shift := -1
	for _, cw := range run {
		for _, v := range [2]int{cw / 30, cw % 30} {
			current := submode
			if shift >= 0 {
				current = shift
				shift = -1
			}
			switch current {
			case alpha, lower:
				switch {
				case v < 26 && current == alpha:
					out = append(out, byte('A'+v))
				case v < 26:
					out = append(out, byte('a'+v))
				case v == 26:
					out = append(out, ' ')
				case v == 27 && current == alpha:
					submode = lower
				case v == 27:
					shift = alpha
				case v == 28:
					submode = mixedMode
				case v == 29:
					shift = punct
				}
			case mixedMode:
				switch {
				case v < 25:
					out = append(out, mixedChars[v])
				case v == 25:
					submode = punct
				case v == 26:
					out = append(out, ' ')
				case v == 27:
					submode = lower
				case v == 28:
					submode = alpha
				case v == 29:
					shift = punct
				}
			case punct:
				if v < 29 {
					out = append(out, punctChars[v])
				} else {
					submode = alpha
				}
			}
		}
	}
	return out
}

func decodeBytes(out []byte, run []int, mode int) ([]byte, error) {
	i := 0
	for ; len(run)-i >= 5 && (mode == LatchToByte || len(run)-i > 5); i += 5 {
		var v uint64
		for _, cw := range run[i : i+5] {
			v = v*900 + uint64(cw)
		}
		for k := 5; k >= 0; k-- {
			out = append(out, byte(v>>(8*uint(k))))
		}
	}
	if mode == LatchToByte && i != len(run) {
		return nil, fmt.Errorf("%d trailing codewords after latch %d", len(run)-i, mode)
	}
	for ; i < len(run); i++ {
		if run[i] > 255 {
			return nil, fmt.Errorf("byte codeword %d out of range", run[i])
		}
		out = append(out, byte(run[i]))
	}
	return out, nil
}

func decodeNumeric(out []byte, run []int) ([]byte, error) {
	for i := 0; i < len(run); i += 15 {
		end := i + 15
		if end > len(run) {
			end = len(run)
		}
		v := new(big.Int)
		for _, cw := range run[i:end] {
			v.Mul(v, num900)
			v.Add(v, big.NewInt(int64(cw)))
		}
		s := v.String()
		if !strings.HasPrefix(s, "1") {
			return nil, fmt.Errorf("numeric group %v does not start with 1", run[i:end])
		}
		out = append(out, s[1:]...)
	}
	return out, nil
}
