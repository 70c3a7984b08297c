// Package site builds the static output directory: the rendered page, the
// published stylesheet, and a manifest recording what was built. The build
// is a fixed pipeline of stages run in order, each timed, with every file
// written atomically.
package site

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dferreira/cnotes/internal/config"
	"github.com/dferreira/cnotes/internal/content"
	"github.com/dferreira/cnotes/internal/render"
	"github.com/dferreira/cnotes/internal/ux"
)

// Version is stamped into manifests and the CLI.
const Version = "0.1.0"

const pageName = "index.html"

// Builder runs the build pipeline for one output directory.
type Builder struct {
	Config *config.Config
	Root   string // project root; relative paths resolve against it
	Topics []content.Topic

	manifest *Manifest
}

type stage struct {
	name string
	run  func(context.Context) error
}

// OutputDir returns the absolute output directory.
func (b *Builder) OutputDir() string {
	if filepath.IsAbs(b.Config.OutputDir) {
		return b.Config.OutputDir
	}
	return filepath.Join(b.Root, b.Config.OutputDir)
}

// Build runs validate, render, assets, manifest, and verify in order and
// returns the manifest. The returned copy carries the timings of every
// stage; the copy on disk only those that finished before it was written.
func (b *Builder) Build(ctx context.Context) (*Manifest, error) {
	out := b.OutputDir()
	if err := ensureDir(out); err != nil {
		return nil, err
	}
	b.manifest = newManifest(b.Topics)

	stages := []stage{
		{"validate", b.stageValidate},
		{"render", b.stageRender},
		{"assets", b.stageAssets},
		{"manifest", b.stageManifest},
		{"verify", b.stageVerify},
	}
	total := len(stages)

	for i, s := range stages {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		ux.StageHeader(i, total, s.name)
		start := time.Now()
		if err := s.run(ctx); err != nil {
			ux.StageFail(i, s.name, err.Error())
			return nil, err
		}
		d := time.Since(start)
		b.manifest.AddStage(s.name, d)
		ux.StageDone(i, s.name, d)
	}
	return b.manifest, nil
}

func (b *Builder) stageValidate(ctx context.Context) error {
	return content.Validate(b.Topics)
}

func (b *Builder) stageRender(ctx context.Context) error {
	meta := render.Meta{
		Title:       b.Config.Title,
		Description: b.Config.Description,
		BaseURL:     b.Config.BaseURL,
		Lang:        b.Config.Lang,
		Stylesheet:  "assets/style.css",
		Author:      b.Config.Author,
	}
	page, err := render.Page(meta, b.Topics)
	if err != nil {
		return err
	}
	path := filepath.Join(b.OutputDir(), pageName)
	if err := writeFileAtomic(path, page, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	b.manifest.AddFile(pageName, int64(len(page)))
	return nil
}

func (b *Builder) stageAssets(ctx context.Context) error {
	css, err := stylesheetFor(b.Config, b.Root)
	if err != nil {
		return err
	}
	rel := filepath.Join("assets", "style.css")
	path := filepath.Join(b.OutputDir(), rel)
	if err := writeFileAtomic(path, css, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	b.manifest.AddFile(rel, int64(len(css)))
	return nil
}

func (b *Builder) stageManifest(ctx context.Context) error {
	b.manifest.BuildID = uuid.NewString()
	b.manifest.BuiltAt = time.Now().UTC()
	return b.manifest.Save(b.OutputDir())
}

func (b *Builder) stageVerify(ctx context.Context) error {
	return VerifyDir(b.OutputDir(), b.Topics)
}
