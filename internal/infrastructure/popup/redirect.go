package popup

import (
	"net/url"
	"strings"

	"github.com/oneuniverse/onboard/internal/application/port"
)

// ParseRedirect turns a navigation to the OAuth redirect URI into the
// message the callback page would post. ok is false for any other URL.
// The implicit grant delivers its result in the fragment; a query-string
// error is accepted too since some providers report failures that way.
func ParseRedirect(navigated, redirectURL string) (msg port.Message, ok bool) {
	target, err := url.Parse(navigated)
	if err != nil {
		return port.Message{}, false
	}
	want, err := url.Parse(redirectURL)
	if err != nil {
		return port.Message{}, false
	}
	if !strings.EqualFold(target.Scheme, want.Scheme) ||
		!strings.EqualFold(target.Host, want.Host) ||
		strings.TrimSuffix(target.Path, "/") != strings.TrimSuffix(want.Path, "/") {
		return port.Message{}, false
	}

	params, _ := url.ParseQuery(target.Fragment)
	if len(params) == 0 {
		params = target.Query()
	}

	msg = port.Message{
		Origin: strings.ToLower(target.Scheme) + "://" + strings.ToLower(target.Host),
		State:  params.Get("state"),
	}
	switch {
	case params.Get("access_token") != "":
		msg.Type = port.MessageOAuthSuccess
		msg.AccessToken = params.Get("access_token")
	case params.Get("error") != "":
		msg.Type = port.MessageOAuthError
		msg.Error = params.Get("error")
		if desc := params.Get("error_description"); desc != "" {
			msg.Error += ": " + desc
		}
	default:
		return port.Message{}, false
	}
	return msg, true
}
