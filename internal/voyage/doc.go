// Package voyage steps a vessel along a planned route and reroutes it when
// it comes close to a hazard or emergency port.
//
// A voyage moves through Planning, Traveling, (Rerouting, Traveling)* and
// ends Completed or Aborted. The first hazard within the proximity threshold
// replaces the destination: the vessel is routed to that point and the
// voyage ends there.
package voyage
