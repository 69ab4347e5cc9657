package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/pathlight/courseware/internal/apperr"
)

// DefaultSignatureTolerance bounds how stale a signed timestamp may be;
// beyond it a replayed capture is rejected even with a valid MAC.
const DefaultSignatureTolerance = 5 * time.Minute

// VerifySignature checks the processor's signature header against the raw
// payload. The header format is "t=<unix>,v1=<hex>", where v1 is
// HMAC-SHA256(secret, "<unix>.<payload>"). Any failure is a SecurityError;
// callers must perform no side effects after one.
func VerifySignature(payload []byte, header, secret string, tolerance time.Duration, now time.Time) error {
	if secret == "" {
		return apperr.Configuration("webhook secret not configured")
	}
	if header == "" {
		return apperr.Security("missing signature header")
	}

	var ts int64
	var sigs []string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return apperr.Security("malformed signature timestamp")
			}
			ts = n
		case "v1":
			sigs = append(sigs, v)
		}
	}
	if ts == 0 || len(sigs) == 0 {
		return apperr.Security("malformed signature header")
	}

	age := now.Sub(time.Unix(ts, 0))
	if age > tolerance || age < -tolerance {
		return apperr.Security("signature timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	want := hex.EncodeToString(mac.Sum(nil))

	for _, got := range sigs {
		if hmac.Equal([]byte(want), []byte(got)) {
			return nil
		}
	}
	return apperr.Security("signature mismatch")
}

// SignPayload produces a signature header for payload. Tests and the
// checkout client's sandbox tooling use it.
func SignPayload(payload []byte, secret string, at time.Time) string {
	ts := strconv.FormatInt(at.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	return "t=" + ts + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}
