package domain

import "testing"

func TestDataURIRoundTrip(t *testing.T) {
	original := "data:image/png;base64,QUJD"
	asset, err := ParseDataURI(original)
	if err != nil {
		t.Fatalf("ParseDataURI returned error: %v", err)
	}
	if asset.MediaType != "image/png" {
		t.Fatalf("media type mismatch: %s", asset.MediaType)
	}
	if asset.Data != "QUJD" {
		t.Fatalf("payload mismatch: %s", asset.Data)
	}
	if got := asset.DataURI(); got != original {
		t.Fatalf("round trip mismatch: got %q want %q", got, original)
	}
}

func TestParseDataURIRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"missing prefix":       "image/png;base64,QUJD",
		"missing separator":    "data:image/png;base64",
		"not base64 encoded":   "data:image/png,QUJD",
		"missing media type":   "data:;base64,QUJD",
		"invalid base64 bytes": "data:image/png;base64,not-base64!",
	}
	for name, uri := range cases {
		if _, err := ParseDataURI(uri); err == nil {
			t.Fatalf("%s: expected error for %q", name, uri)
		}
	}
}

func TestSafetyBlockedErrorMessage(t *testing.T) {
	err := &SafetyBlockedError{Categories: []string{"adult", "violence"}}
	want := "generation blocked by safety policy: adult, violence"
	if err.Error() != want {
		t.Fatalf("message mismatch: %s", err.Error())
	}

	empty := &SafetyBlockedError{}
	if err := empty.Error(); err != "generation blocked by safety policy: unspecified category" {
		t.Fatalf("fallback mismatch: %s", err)
	}
}

func TestNoImageErrorFallbackReason(t *testing.T) {
	err := &NoImageError{}
	if got := err.Error(); got != "model returned no image: "+NoSpecificReason {
		t.Fatalf("fallback mismatch: %s", got)
	}
}
