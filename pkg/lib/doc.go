// Package lib provides a Go SDK to embed the checkmycrypto demo widgets.
//
// A [Client] owns a single event loop. Every widget mounted from the client
// runs its transitions and timers on that loop, so widgets can be driven from
// any goroutine.
//
//	client, err := lib.New(lib.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	go client.Run(ctx)
//
//	scanner, _ := client.MountScanner(ctx)
//	defer scanner.Dispose()
//
//	scanner.Subscribe(ctx, func(st lib.ScanState) {
//	    fmt.Println(st.Phase, st.Result)
//	})
//	scanner.StartScan(ctx)
//
// # Error Handling
//
// Widget operations never fail on their own. Errors come from the boundary
// and can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: the address is not a demo address.
//   - [ErrNotValid]: invalid configuration or operation.
//   - [ErrStopped]: the client loop is not running anymore.
package lib
