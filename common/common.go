// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"encoding/json"
	"net/http"
)

// Version is reported to the server through the X-Client-Version header
// on every outbound request.
const Version = "go-apiclient/0.2.0"

func DecodeJSONBody(res *http.Response, j interface{}) error {
	defer res.Body.Close()

	return json.NewDecoder(res.Body).Decode(&j)
}
