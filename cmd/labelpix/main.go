package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/labelpix/labelpix/internal/annotate"
	"github.com/labelpix/labelpix/internal/config"
	"github.com/labelpix/labelpix/internal/detect"
	"github.com/labelpix/labelpix/internal/imaging"
	"github.com/labelpix/labelpix/internal/pipeline"
	"github.com/labelpix/labelpix/internal/storage"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("labelpix %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	inputPath := os.Args[1]

	cfg := config.Load()
	ctx := context.Background()

	if !storage.AllowedName(inputPath) {
		log.Fatalf("invalid file type %q: only png, jpg and jpeg are accepted", filepath.Ext(inputPath))
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("failed to read %s: %v", inputPath, err)
	}

	var provider detect.Provider
	if cfg.DryRun {
		provider = detect.SyntheticProvider{}
	} else {
		provider, err = detect.NewRekognitionProvider(ctx, cfg.Region)
		if err != nil {
			log.Fatalf("failed to initialize Rekognition: %v", err)
		}
	}

	store, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}

	pipe := pipeline.New(provider, store, annotate.StyleFromHex(cfg.OutlineHex))

	outcome, err := pipe.Process(ctx, data, filepath.Base(inputPath))
	if err != nil {
		var decodeErr *imaging.DecodeError
		var serviceErr *detect.ServiceError
		var storageErr *storage.StorageError
		switch {
		case errors.As(err, &decodeErr):
			log.Fatalf("image processing error: %v", decodeErr.Err)
		case errors.As(err, &serviceErr):
			log.Fatalf("AWS Rekognition error: %s", serviceErr.Message)
		case errors.As(err, &storageErr):
			log.Fatalf("storage error: %v", storageErr)
		default:
			log.Fatalf("processing failed: %v", err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outcome); err != nil {
		log.Fatalf("failed to encode result: %v", err)
	}
}

func usage() {
	fmt.Println("labelpix - annotate an image with detected object labels")
	fmt.Println()
	fmt.Println("Usage: labelpix [options] <image.{png,jpg,jpeg}>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  AWS_REGION             Rekognition region (default us-east-1)")
	fmt.Println("  REKOGNITION_DRY_RUN    true = use the synthetic provider, no AWS calls")
	fmt.Println("  UPLOAD_DIR             Artifact directory (default static/uploads)")
	fmt.Println("  ANNOTATE_OUTLINE       Outline color hex (default #FF0000)")
	fmt.Println()
	fmt.Println("Writes the original and annotated copies into UPLOAD_DIR and prints")
	fmt.Println("the artifact names plus the detection result as JSON on stdout.")
}
