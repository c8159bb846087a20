// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ifcapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"cloudeng.io/webapp/jsonapi"
)

// WriteResponse writes resp in JSON format with a 200 status code. The
// response is encoded before any headers are written so that encoding
// failures are reported via jsonapi.WriteErrorMsg with a 500 status code.
func WriteResponse(rw http.ResponseWriter, resp any) error {
	buf, err := json.Marshal(resp)
	if err != nil {
		jsonapi.WriteErrorMsg(rw, "failed to encode response", http.StatusInternalServerError)
		return fmt.Errorf("failed to encode response: %w", err)
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	_, err = rw.Write(append(buf, '\n'))
	return err
}

func writeError(rw http.ResponseWriter, err error, status int) {
	jsonapi.WriteErrorMsg(rw, err.Error(), status)
}
