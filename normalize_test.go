package axiar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeResult_Success(t *testing.T) {
	testCases := []struct {
		name    string
		fields  map[string]string
		success bool
	}{
		{name: "SUCCESS", fields: map[string]string{"result": "SUCCESS"}, success: true},
		{name: "DECLINED", fields: map[string]string{"result": "DECLINED"}, success: false},
		{name: "REFERRED", fields: map[string]string{"result": "REFERRED"}, success: false},
		{name: "absent result", fields: map[string]string{"error_message": "Invalid credentials"}, success: false},
		{name: "lowercase is not success", fields: map[string]string{"result": "success"}, success: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := normalizeResult(tc.fields, false)
			assert.Equal(t, tc.success, res.Success)
		})
	}
}

func TestNormalizeResult_MessageSelection(t *testing.T) {
	testCases := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{
			name:   "error message preferred",
			fields: map[string]string{"error_message": "The card was declined.", "auth_message": "AUTHORISED"},
			want:   "The card was declined.",
		},
		{
			name:   "auth message fallback",
			fields: map[string]string{"auth_message": "AUTHORISED"},
			want:   "AUTHORISED",
		},
		{
			name:   "no message",
			fields: map[string]string{"result": "SUCCESS"},
			want:   "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeResult(tc.fields, false).Message)
		})
	}
}

func TestNormalizeResult_AuthorizationComposition(t *testing.T) {
	testCases := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{
			name:   "both parts",
			fields: map[string]string{"trx_id": "ABC123", "auth_code": "509426"},
			want:   "ABC123;509426",
		},
		{
			name:   "missing auth code",
			fields: map[string]string{"trx_id": "ABC123"},
			want:   "ABC123;",
		},
		{
			name:   "missing both",
			fields: map[string]string{},
			want:   ";",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeResult(tc.fields, false).Authorization)
		})
	}
}

func TestNormalizeResult_AVSMapping(t *testing.T) {
	testCases := []struct {
		name       string
		avs        string
		wantCVV    string
		wantStreet string
		wantPostal string
	}{
		{name: "UYN", avs: "UYN", wantCVV: "X", wantStreet: "Y", wantPostal: "N"},
		{name: "YUY", avs: "YUY", wantCVV: "Y", wantStreet: "X", wantPostal: "Y"},
		{name: "unrecognized characters pass through", avs: "Z..", wantCVV: "Z", wantStreet: ".", wantPostal: "."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := normalizeResult(map[string]string{"result": "SUCCESS", "avs_result": tc.avs}, false)
			require.NotNil(t, res.AVS)
			assert.Equal(t, tc.wantCVV, res.CVVResult)
			assert.Equal(t, tc.wantStreet, res.AVS.StreetMatch)
			assert.Equal(t, tc.wantPostal, res.AVS.PostalMatch)
		})
	}
}

func TestNormalizeResult_AVSAbsentOrMalformed(t *testing.T) {
	testCases := []struct {
		name   string
		fields map[string]string
	}{
		{name: "absent", fields: map[string]string{"result": "SUCCESS"}},
		{name: "empty", fields: map[string]string{"result": "SUCCESS", "avs_result": ""}},
		{name: "truncated", fields: map[string]string{"result": "SUCCESS", "avs_result": "UY"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := normalizeResult(tc.fields, false)
			assert.Nil(t, res.AVS)
			assert.Empty(t, res.CVVResult)
		})
	}
}

func TestNormalizeResult_ThreeDSecureDetection(t *testing.T) {
	full := map[string]string{
		"pareq":        "eJzT0y==",
		"md":           "merchant-data",
		"redirect_url": "https://acs.example.com/3ds",
	}

	res := normalizeResult(full, false)
	require.NotNil(t, res.ThreeDSecure)
	assert.Equal(t, "eJzT0y==", res.ThreeDSecure.PAReq)
	assert.Equal(t, "merchant-data", res.ThreeDSecure.MD)
	assert.Equal(t, "https://acs.example.com/3ds", res.ThreeDSecure.RedirectURL)

	for _, missing := range []string{"pareq", "md", "redirect_url"} {
		t.Run("missing "+missing, func(t *testing.T) {
			fields := map[string]string{}
			for k, v := range full {
				fields[k] = v
			}
			fields[missing] = ""
			assert.Nil(t, normalizeResult(fields, false).ThreeDSecure)
		})
	}
}

func TestNormalizeResult_TokenAndTestMode(t *testing.T) {
	fields := map[string]string{
		"result":    "SUCCESS",
		"trx_token": "0132902a0be13e0001a",
	}

	res := normalizeResult(fields, true)
	assert.Equal(t, "0132902a0be13e0001a", res.CardToken)
	assert.True(t, res.TestMode)
	assert.Equal(t, fields, res.Fields)
}
