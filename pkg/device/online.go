// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package device

import (
	"context"
	"net"
	"time"

	"golang.org/x/sync/errgroup"
)

// probeAddrs are well-known anycast endpoints dialed by Online. The
// list is overridable for tests.
var probeAddrs = []string{
	"1.1.1.1:443", // Cloudflare DNS
	"8.8.8.8:53",  // Google DNS
}

// probeTimeout bounds the whole connectivity check.
const probeTimeout = 2 * time.Second

// Online reports whether the machine can reach the internet, probing
// the well-known endpoints concurrently and answering true as soon as
// any TCP dial succeeds. All failures, timeouts and sandbox denials
// included, report false; the check never returns an error.
func Online(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	hit := make(chan struct{}, len(probeAddrs))

	for _, addr := range probeAddrs {
		g.Go(func() error {
			var d net.Dialer
			conn, err := d.DialContext(ctx, "tcp", addr)
			if err != nil {
				return nil // a failed probe is not an error, just a miss
			}
			conn.Close()
			hit <- struct{}{}
			cancel() // first success answers the question
			return nil
		})
	}
	g.Wait()

	select {
	case <-hit:
		return true
	default:
		return false
	}
}
