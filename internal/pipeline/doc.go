// Package pipeline sequences one upload through the annotation stages:
// normalize, persist the original, detect, map geometry, render, persist the
// annotated copy.
//
// The sequence is strictly linear and non-retrying. A failure at any stage
// terminates the request with the originating component's typed error
// (imaging.DecodeError, detect.ServiceError, storage.StorageError); there is
// no partial recovery and no fallback between detection providers. The two
// artifact writes are not transactional: a crash between them can leave only
// the original on disk, which is accepted.
package pipeline
