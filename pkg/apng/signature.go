package apng

import (
	"encoding/binary"
	"fmt"
)

func checkSignature(buf []byte) error {
	if len(buf) < len(Signature) {
		return &FormatError{Msg: "not a PNG stream: too short"}
	}

	sig := binary.BigEndian.Uint64(buf)
	if sig != signatureValue {
		return &FormatError{Msg: fmt.Sprintf("not a PNG stream: invalid signature %016x", sig)}
	}

	return nil
}
