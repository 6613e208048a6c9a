package axiar

import "github.com/axiarpayments/axiar-go/models"

// avsCodeTable translates the gateway's raw AVS/CVV characters into the
// match codes callers consume. U means the check did not run.
var avsCodeTable = map[byte]string{
	'U': models.MatchNotChecked,
	'Y': models.MatchYes,
	'N': models.MatchNo,
}

// mapAVSCode translates one raw AVS/CVV character. Unrecognized
// characters pass through unmapped so parse anomalies stay visible to
// the caller instead of being coerced to a default.
func mapAVSCode(c byte) string {
	if mapped, ok := avsCodeTable[c]; ok {
		return mapped
	}
	return string(c)
}

// normalizeResult classifies a flattened gateway response. Declines and
// referrals are ordinary results, not errors.
func normalizeResult(fields map[string]string, testMode bool) models.Result {
	res := models.Result{
		Success:       fields["result"] == models.ResultSuccess,
		Message:       selectMessage(fields),
		Authorization: fields["trx_id"] + ";" + fields["auth_code"],
		CardToken:     fields["trx_token"],
		TestMode:      testMode,
		Fields:        fields,
	}

	// Position 0 is the CVV check, 1 the street match, 2 the postal match.
	// Anything other than the documented three characters is left alone.
	if avs := fields["avs_result"]; len(avs) == 3 {
		res.CVVResult = mapAVSCode(avs[0])
		res.AVS = &models.AVSResult{
			StreetMatch: mapAVSCode(avs[1]),
			PostalMatch: mapAVSCode(avs[2]),
		}
	}

	// A 3-D Secure challenge needs all three handoff values; a partial
	// set is no challenge.
	pareq, md, redirect := fields["pareq"], fields["md"], fields["redirect_url"]
	if pareq != "" && md != "" && redirect != "" {
		res.ThreeDSecure = &models.ThreeDSecureChallenge{
			PAReq:       pareq,
			MD:          md,
			RedirectURL: redirect,
		}
	}

	return res
}

// selectMessage prefers the gateway's error message over its
// authorization message.
func selectMessage(fields map[string]string) string {
	if msg := fields["error_message"]; msg != "" {
		return msg
	}
	return fields["auth_message"]
}
