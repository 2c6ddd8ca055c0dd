// Package nanoclient creates clients for the NaNoWriMo API.
//
// Basic usage:
//
//	client, err := nanoclient.NewWithLogin(ctx, "writer", "hunter2")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	user, err := client.CurrentUser(ctx, nano.NewQuery().Include(nano.KindProject))
//
// Anonymous clients work for the public endpoints:
//
//	client, _ := nanoclient.NewAnonymous()
//	fund, err := client.Fundometer(ctx)
package nanoclient
