// Package videosvc serves video resources: the read-side videos.list
// operation and the control-plane create used to stage fixtures.
package videosvc
