package chatlog

import (
	"encoding/base64"
	"strconv"
)

// Page tokens are opaque to clients. Internally a token is the base64 of the
// decimal cursor, where the cursor is the index of the next message to
// deliver. The empty token means "start from the beginning" (cursor 0).

// InvalidPageTokenError reports a token that cannot be decoded.
type InvalidPageTokenError struct {
	Reason string
}

func (e *InvalidPageTokenError) Error() string {
	return "invalid page token: " + e.Reason
}

// EncodePageToken encodes a cursor as an opaque page token.
func EncodePageToken(cursor uint64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatUint(cursor, 10)))
}

// DecodePageToken parses tok back into a cursor. The empty token decodes to
// cursor 0. Any token that is not valid base64 of a non-negative decimal
// integer yields an *InvalidPageTokenError.
func DecodePageToken(tok string) (uint64, error) {
	if tok == "" {
		return 0, nil
	}
	raw, err := base64.StdEncoding.DecodeString(tok)
	if err != nil {
		return 0, &InvalidPageTokenError{Reason: "not valid base64"}
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, &InvalidPageTokenError{Reason: "not a numeric cursor"}
	}
	if n < 0 {
		return 0, &InvalidPageTokenError{Reason: "negative cursor"}
	}
	return uint64(n), nil
}
