// Package grid builds the navigable lattice the router searches over.
//
// A Graph is generated once from a lat/lon bounding box and a step size in
// degrees. Every lattice point is connected to its (up to) eight compass
// neighbors that lie inside the box, and each edge carries the great-circle
// distance between its endpoints in kilometers. Optional exclusion zones
// (land masses, restricted waters) remove lattice points and the edges that
// would cross them.
//
// A Graph is immutable after construction and safe for concurrent readers.
//
// Besides Build, the package offers FromAdjacency for hand-assembled graphs,
// a compressed msgpack codec (Encode/Decode) and GeoJSON export helpers.
package grid
