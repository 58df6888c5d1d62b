package util

import (
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

var redacted = map[string]bool{
	"Cookie":        true,
	"Set-Cookie":    true,
	"Authorization": true,
}

// HeaderFields flattens header into log fields. Repeated keys get an index
// suffix; credentials are masked.
func HeaderFields(header http.Header) log.Fields {
	fields := log.Fields{}
	for k, v := range header {
		key := "header." + strings.ToLower(k)
		if redacted[http.CanonicalHeaderKey(k)] {
			fields[key] = "[redacted]"
			continue
		}
		if len(v) > 1 {
			for i, str := range v {
				fields[fmt.Sprintf("%s[%d]", key, i)] = str
			}
		} else if len(v) == 1 {
			fields[key] = v[0]
		}
	}
	return fields
}
