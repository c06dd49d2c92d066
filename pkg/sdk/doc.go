// Package sdk provides a Go client for the smartpills suggestion API.
//
//	client := sdk.New("http://localhost:3001")
//	resp, _ := client.SmartPills(ctx, "jordan rookie")
//	for _, pill := range resp.Pills {
//	    fmt.Println(pill.Label, pill.Count)
//	}
//
// Saved searches require the server to run with a cache store; without
// one the server answers ErrUnavailable.
package sdk
