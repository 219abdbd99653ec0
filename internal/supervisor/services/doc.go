// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

/*
Package services provides suture.Service wrappers for What2Eat components.

  - HTTPServerService: translates http.Server's ListenAndServe/Shutdown pair
    into a context-aware Serve with a bounded drain.
  - SessionJanitorService: purges expired sessions on a ticker.
  - BadgerGCService: reclaims BadgerDB value log space on a ticker.

Each wrapper depends on a one-method interface (HTTPServer, SessionCleaner,
GarbageCollector) so tests can drive it without a real server or database.
All of them implement fmt.Stringer so supervisor logs name the service.
*/
package services
