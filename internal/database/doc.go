// Package database records the repositories cvehunt has cloned.
//
// The history lives in a BoltDB file with two buckets:
//
//	clones: UID  -> Clone JSON
//	paths:  Path -> UID
//
// Cloning into a path that is already recorded replaces the older entry, so
// the history holds at most one clone per local directory.
package database
