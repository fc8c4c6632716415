package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identifier prefixes per record type. Ids look like "WI-1718443200000-3f2a9c1b":
// a type prefix, the creation instant in millis, and a uuid fragment so that
// two creates within the same millisecond never collide.
const (
	PrefixWorkItem    = "WI"
	PrefixProject     = "P"
	PrefixAsset       = "AST"
	PrefixMaterial    = "MAT"
	PrefixMovement    = "MV"
	PrefixDailyLog    = "LOG"
	PrefixEmployee    = "EMP"
	PrefixPayroll     = "PAY"
	PrefixVendor      = "V"
	PrefixPO          = "PO"
	PrefixContract    = "C"
	PrefixPettyCash   = "PCASH"
	PrefixClient      = "CL"
	PrefixChangeOrder = "CO"
	PrefixRfi         = "RFI"
	PrefixSubmittal   = "SUB"
	PrefixCertificate = "PC"
	PrefixNcr         = "NCR"
	PrefixPermit      = "PRM"
	PrefixLG          = "LG"
	PrefixDocument    = "DOC"
	PrefixArticle     = "KB"
	PrefixNotif       = "N"
	PrefixDraft       = "draft"
	PrefixComment     = "CM"
)

// NewID generates a prefixed identifier for a new record.
func NewID(prefix string) string {
	frag := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return prefix + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + frag
}

// Touch returns a timestamp strictly after prior for use as an updated-at
// value. Successive updates within clock resolution still produce strictly
// increasing timestamps.
func Touch(prior time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prior) {
		return prior.Add(time.Millisecond)
	}
	return now
}
