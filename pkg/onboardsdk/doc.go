// Package onboardsdk is the Go client for the onboarding RPC API, and holds
// the wire types the server encodes.
//
// Every operation is a POST to /v1/onboarding/{operation} with a JSON body:
//
//	c := onboardsdk.NewClient("http://localhost:8080").WithToken(accessToken)
//	report, err := c.GetMyProgress(ctx)
//	if onboardsdk.IsCode(err, onboardsdk.CodeNotFound) {
//		// no employee record is linked to this account
//	}
//
// Errors from the server are returned as *APIError carrying the HTTP status
// and the stable error code.
package onboardsdk
