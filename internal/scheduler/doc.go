// Package scheduler dispatches path requests onto a bounded number of
// concurrent searches and delivers their results on a channel.
//
// Every accepted request produces exactly one Response. Requests are not
// ordered with respect to each other.
package scheduler
