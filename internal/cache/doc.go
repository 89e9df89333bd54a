// Package cache holds the client-side views the UI renders from: the paginated
// message cache of every loaded conversation and the set of open chat
// windows.
//
// Two writers race on the message cache: optimistic local sends and
// server-pushed messages. Both converge because every insert is deduplicated
// by message id.
package cache
