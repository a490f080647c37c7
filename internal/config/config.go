// Package config reads process-wide settings from the environment.
//
// Configuration is read exactly once at startup via Load and carried as an
// immutable value; no other package consults the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds the settings consumed by the annotation pipeline.
type Config struct {
	// Region is the AWS region the Rekognition client is created in.
	Region string

	// DryRun selects the synthetic detection provider instead of the
	// remote Rekognition service. Useful for tests and offline demos.
	DryRun bool

	// UploadDir is the flat directory that receives both the original and
	// the annotated copy of every processed upload.
	UploadDir string

	// OutlineHex is the annotation outline color as "#RRGGBB".
	OutlineHex string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load builds a Config from the environment. Call it once at process start.
//
// Recognized variables:
//   - AWS_REGION: Rekognition region (default "us-east-1")
//   - REKOGNITION_DRY_RUN: "true" selects the synthetic provider
//   - UPLOAD_DIR: artifact directory (default "static/uploads")
//   - ANNOTATE_OUTLINE: outline color hex (default "#FF0000")
func Load() *Config {
	return &Config{
		Region:     getEnv("AWS_REGION", "us-east-1"),
		DryRun:     strings.EqualFold(os.Getenv("REKOGNITION_DRY_RUN"), "true"),
		UploadDir:  getEnv("UPLOAD_DIR", filepath.Join("static", "uploads")),
		OutlineHex: getEnv("ANNOTATE_OUTLINE", "#FF0000"),
	}
}
