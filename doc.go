// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

/*
Package apiclient is a client for the Turnkey-style remote
signing-and-custody API. Requests are authenticated by stamping: the
serialized body is signed with a P-256 API key and the signature travels
in the X-Stamp header. State-changing calls create server-side
activities, which the client polls until they reach a terminal status,
then reshapes the nested result payload into a flat, typed response.

Typical use

The user creates a Client supplying the endpoint, the API key pair and
the default organization scope:

	client, err := apiclient.NewClient(apiclient.Config{
		BaseURL: "https://api.turnkey.example",
		Stamper: &stamp.APIKeyStamper{
			APIPublicKey:  apiPublicKeyHex,
			APIPrivateKey: apiPrivateKeyHex,
		},
		OrganizationID: "b9667a1f-0a42-4beb-9b67-57bc7291ec81",
	})

Queries return synchronously:

	whoami, err := client.GetWhoami(nil)

Activities block until the created activity is terminal or the polling
ceiling is hit; callers must inspect the returned status either way:

	resp, err := client.CreateAPIKeys(&apiclient.CreateAPIKeysBody{
		UserID:  userID,
		APIKeys: []apiclient.APIKeyParams{{...}},
	})
	if err == nil && resp.Activity.Status == activity.StatusCompleted {
		fmt.Println(resp.APIKeyIDs)
	}

Stamp now, send later

Every operation has a Stamp twin performing identical body construction
and stamping but no I/O, which enables multi-party approval flows where a
request is signed in one place and submitted in another:

	req, err := client.StampCreateAPIKeys(&body)
	// ... transport req elsewhere ...
	resp, err := apiclient.Submit[apiclient.CreateAPIKeysResponse](client, req)

An organizationId supplied in any call body always overrides the
client-wide default, so a single client can act across organizations.
*/
package apiclient
