package billing

import (
	"testing"
	"time"

	"github.com/pathlight/courseware/internal/apperr"
)

const secret = "whsec_test"

func TestVerifySignatureRoundTrip(t *testing.T) {
	now := time.Unix(1_750_000_000, 0)
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	header := SignPayload(payload, secret, now)

	if err := VerifySignature(payload, header, secret, DefaultSignatureTolerance, now); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
}

func TestVerifySignatureRejections(t *testing.T) {
	now := time.Unix(1_750_000_000, 0)
	payload := []byte(`{"id":"evt_1"}`)
	good := SignPayload(payload, secret, now)

	cases := []struct {
		name    string
		payload []byte
		header  string
		now     time.Time
	}{
		{"missing header", payload, "", now},
		{"garbage header", payload, "not-a-signature", now},
		{"wrong secret", payload, SignPayload(payload, "other", now), now},
		{"tampered payload", []byte(`{"id":"evt_2"}`), good, now},
		{"stale timestamp", payload, good, now.Add(DefaultSignatureTolerance + time.Minute)},
		{"future timestamp", payload, good, now.Add(-DefaultSignatureTolerance - time.Minute)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := VerifySignature(tc.payload, tc.header, secret, DefaultSignatureTolerance, tc.now)
			if !apperr.IsKind(err, apperr.KindSecurity) {
				t.Fatalf("err = %v, want security error", err)
			}
		})
	}
}

func TestVerifySignatureMissingSecretFailsClosed(t *testing.T) {
	err := VerifySignature([]byte("{}"), "t=1,v1=00", "", DefaultSignatureTolerance, time.Now())
	if !apperr.IsKind(err, apperr.KindConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}
