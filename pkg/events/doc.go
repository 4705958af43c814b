// Package events publishes layout changes to observers.
//
// Every mutation of a session produces an [Event] carrying the operation
// and the resulting layout snapshot. A [Publisher] delivers events:
//
//   - [NullPublisher] discards them
//   - [LogPublisher] writes a structured log line per event
//   - [RedisPublisher] sends JSON on a Redis pub/sub channel
//
// [Fanout] combines publishers. Redis publishing retries transient network
// failures with exponential backoff.
package events
