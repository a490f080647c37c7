// Package detect defines the detection result model and the Provider
// capability interface, with two implementations: the AWS Rekognition backed
// RekognitionProvider and the offline SyntheticProvider.
//
// # Coordinate System
//
// Bounding boxes are normalized: each edge is expressed as a fraction of the
// image dimension in [0,1], origin at the top-left corner. Conversion to
// pixel coordinates happens in the annotate package, never here.
//
// # Provider Selection
//
// Which provider runs is a process-wide decision made once at startup from
// configuration; the chosen implementation is injected into the pipeline.
// Providers do not retry and do not fall back to one another.
package detect
