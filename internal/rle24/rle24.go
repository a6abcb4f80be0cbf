// Package rle24 implements the channel-interleaved run-length encoding
// ("RLE24") used by 24-bit color ICNS icon elements (is32, il32, ih32,
// it32). It operates purely on pixel counts and channel byte slices; it
// has no notion of icon types or OSTypes, so the element codec that knows
// about the it32 128x128 quirk is the only caller that needs to know
// which variant it's working with.
package rle24

import "github.com/pkg/errors"

// ErrInvalidRLE is returned for any malformed RLE24 stream: truncated,
// over-long, or straddling a channel boundary.
var ErrInvalidRLE = errors.New("rle24: invalid stream")

// itQuirkPrefix is the four zero bytes the it32 (128x128 RLE24) icon type
// always prefixes its payload with, and that a conformant decoder must
// tolerate for any RLE24 variant.
var itQuirkPrefix = [4]byte{0, 0, 0, 0}

// Encode packs three equal-length channel byte slices (typically R, G, B)
// into a single RLE24 payload, emitting the channels back to back in
// order. If pixelCount == 128*128, the payload is prefixed with four zero
// bytes (the "it32 quirk"); callers that know they are not encoding it32
// may still pass a different pixelCount-derived flag via EncodeQuirked.
func Encode(pixelCount int, channels [3][]byte) []byte {
	return EncodeQuirked(channels, pixelCount == 128*128)
}

// EncodeQuirked is Encode with explicit control over whether the four-byte
// quirk prefix is emitted, for callers that want to decide independently
// of pixel count (the element codec decides based on the icon type, not
// just its dimensions).
func EncodeQuirked(channels [3][]byte, quirkPrefix bool) []byte {
	var out []byte
	if quirkPrefix {
		out = append(out, itQuirkPrefix[:]...)
	}
	for _, channel := range channels {
		out = append(out, encodeChannel(channel)...)
	}
	return out
}

// encodeChannel packetizes one channel's bytes: scan forward, tracking a
// pending literal window; whenever a run of three or more identical bytes
// starts, flush the pending literal window (in chunks of at most 128
// bytes) and emit a compressed packet for the run.
func encodeChannel(data []byte) []byte {
	var out []byte
	n := len(data)
	literalStart := 0
	pos := 0
	for pos < n {
		runLen := constantRunLength(data, pos, 130)
		if runLen >= 3 {
			out = flushLiteral(out, data[literalStart:pos])
			out = append(out, byte(runLen+125), data[pos])
			pos += runLen
			literalStart = pos
		} else {
			pos += runLen
		}
	}
	out = flushLiteral(out, data[literalStart:pos])
	return out
}

// constantRunLength returns the number of consecutive bytes starting at
// pos that equal data[pos], capped at max.
func constantRunLength(data []byte, pos, max int) int {
	if pos >= len(data) {
		return 0
	}
	v := data[pos]
	n := 1
	for pos+n < len(data) && n < max && data[pos+n] == v {
		n++
	}
	return n
}

// flushLiteral appends window as one or more literal packets of at most
// 128 bytes each.
func flushLiteral(out []byte, window []byte) []byte {
	for len(window) > 0 {
		chunk := window
		if len(chunk) > 128 {
			chunk = chunk[:128]
		}
		out = append(out, byte(len(chunk)-1))
		out = append(out, chunk...)
		window = window[len(chunk):]
	}
	return out
}

// Decode unpacks an RLE24 payload into three equal-length channel byte
// slices, each pixelCount bytes long. It tolerates (and strips) a leading
// four-zero-byte "it32 quirk" prefix regardless of pixelCount. It returns
// ErrInvalidRLE if the stream is truncated, over-long, straddles a
// channel boundary, or isn't fully consumed by the three channels.
func Decode(pixelCount int, data []byte) (r, g, b []byte, err error) {
	if len(data) >= 4 && [4]byte(data[:4]) == itQuirkPrefix {
		data = data[4:]
	}
	cursor := 0
	channels := make([][]byte, 3)
	for i := range channels {
		channel, newCursor, err := decodeChannel(data, cursor, pixelCount)
		if err != nil {
			return nil, nil, nil, err
		}
		channels[i] = channel
		cursor = newCursor
	}
	if cursor != len(data) {
		return nil, nil, nil, errors.Wrap(ErrInvalidRLE, "trailing bytes after three channels")
	}
	return channels[0], channels[1], channels[2], nil
}

// decodeChannel decodes exactly pixelCount output bytes starting at
// data[cursor], returning the decoded bytes and the cursor position just
// past the packets it consumed.
func decodeChannel(data []byte, cursor, pixelCount int) ([]byte, int, error) {
	out := make([]byte, 0, pixelCount)
	for len(out) < pixelCount {
		if cursor >= len(data) {
			return nil, 0, errors.Wrap(ErrInvalidRLE, "truncated packet header")
		}
		h := data[cursor]
		cursor++
		if h < 128 {
			length := int(h) + 1
			if cursor+length > len(data) {
				return nil, 0, errors.Wrap(ErrInvalidRLE, "truncated literal packet")
			}
			if len(out)+length > pixelCount {
				return nil, 0, errors.Wrap(ErrInvalidRLE, "literal packet overruns channel")
			}
			out = append(out, data[cursor:cursor+length]...)
			cursor += length
		} else {
			if cursor >= len(data) {
				return nil, 0, errors.Wrap(ErrInvalidRLE, "truncated compressed packet")
			}
			v := data[cursor]
			cursor++
			runLen := int(h) - 125
			if len(out)+runLen > pixelCount {
				return nil, 0, errors.Wrap(ErrInvalidRLE, "compressed packet overruns channel")
			}
			for k := 0; k < runLen; k++ {
				out = append(out, v)
			}
		}
	}
	return out, cursor, nil
}
