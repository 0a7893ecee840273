/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filter

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// roundTripLayout is the fixed seven-digit fractional ISO-8601 form the Table
// service stores for Edm.DateTime values.
const roundTripLayout = "2006-01-02T15:04:05.0000000Z07:00"

// EncodeLiteral renders a value as a literal in the Table service query
// grammar. Seven primitive kinds get typed renderings; everything else falls
// back to single-quoted string conversion. All formatting is locale-independent.
//
// The fallback path does not escape embedded single quotes; values containing
// them are the caller's responsibility.
func EncodeLiteral(v any) string {
	switch t := v.(type) {
	case []byte:
		return "X'" + hex.EncodeToString(t) + "'"
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return "datetime'" + t.UTC().Format(roundTripLayout) + "'"
	case uuid.UUID:
		return "guid'" + strings.ToLower(t.String()) + "'"
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10) + "L"
	default:
		return "'" + fmt.Sprintf("%v", t) + "'"
	}
}
