package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport dumps each live request and response at debug level.
//
// It is installed by WithDebugLogging, or automatically when MALL_DEBUG=true
// or DEBUG=true. Dumps include full bodies, so keep it out of production.
//
// Example usage:
//
//	export MALL_DEBUG=true
//	mallctl banners  # live requests are now dumped at debug level
type debugTransport struct {
	base http.RoundTripper
	log  *zerolog.Logger // the owning client's logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		dt.log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Either MALL_DEBUG=true or DEBUG=true turns it on (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("MALL_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
