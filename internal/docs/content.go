package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with cnotes",
		Content: topicQuickstart,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "site.yaml fields, defaults, and environment overrides",
		Content: topicConfig,
	},
	{
		Name:    "content",
		Title:   "Content Model",
		Summary: "Topics, subtopics, notes, code samples, and anchors",
		Content: topicContent,
	},
	{
		Name:    "build",
		Title:   "Build Pipeline",
		Summary: "Stages, outputs, the manifest, and verification",
		Content: topicBuild,
	},
	{
		Name:    "serve",
		Title:   "Preview Server",
		Summary: "Serving the built page locally while authoring",
		Content: topicServe,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a project directory:

    mkdir c-arrays && cd c-arrays
    cnotes init

   This creates site.yaml and assets/style.css.

2. Edit site.yaml to set the title, author, and base URL. Every key is
   optional; a missing site.yaml also works, using the defaults.

3. Build the page:

    cnotes build

   The rendered page, stylesheet, and build manifest land in dist/.

4. Preview it:

    cnotes serve

   Then open http://localhost:8080. The server sends no-store headers,
   so rebuilding and reloading is the whole edit cycle.

5. Publish dist/ with any static file host. The page is a single HTML
   file plus one stylesheet; nothing runs on the server.

CLI Commands
------------

  cnotes init            Scaffold site.yaml and the stylesheet
  cnotes build           Build the page into the output directory
  cnotes check           Validate the content model without building
  cnotes verify [dir]    Check a built directory against the model
  cnotes serve           Build, then serve the output directory locally
  cnotes topics [topic]  List headings and anchors, or show one topic
  cnotes docs [topic]    Show these articles
`

const topicConfig = `Configuration Reference
=======================

cnotes reads site.yaml from the project root. The file is optional, every
key is optional, and unknown environment is never required. Defaults in
parentheses.

Fields
------

  title        Page and site title ("Arrays in C: Study Notes")
  description  One-line description, rendered under the title and in the
               description meta tag (empty)
  base-url     Absolute URL the page will be published at; becomes the
               canonical link (empty)
  lang         Language tag for the html element ("en")
  output-dir   Where builds are written ("dist")
  stylesheet   Path to a stylesheet to publish instead of the built-in
               sheet; must exist if set (empty)
  author       Rendered in the footer and the author meta tag (empty)
  serve.port   Port for 'cnotes serve' (8080)

Validation
----------

The config is validated on every load: the language tag must look like a
language tag, base-url must be an absolute URL, serve.port must be within
1-65535, and a configured stylesheet must exist. Errors name the offending
field and value.

Environment Overrides
---------------------

Three variables override the file, read from the process environment or a
.env file in the working directory:

  CNOTES_OUTPUT_DIR    Overrides output-dir
  CNOTES_BASE_URL      Overrides base-url
  CNOTES_PORT          Overrides serve.port

These exist for CI and deploy pipelines that relocate the output or
publish under a different host.
`

const topicContent = `Content Model
=============

The study guide is compiled into the binary as an ordered tree:

  Topic       Title, summary, and one or more subtopics
  Subtopic    Title, summary, optional bullet notes, optional code samples
  CodeSample  Caption plus verbatim source text

Ordering is authorial and preserved everywhere: the nav, the sections,
the notes, and the samples all render in model order.

Anchors
-------

Every topic and subtopic title derives an anchor slug: lowercase the
title, replace each run of characters outside a-z and 0-9 with one
hyphen, and trim hyphens from the ends. "2.2 Initializer Lists" becomes
"2-2-initializer-lists". Slugging is idempotent, so a slug is its own
slug.

Slugs are the section ids and the nav link targets, which is why
validation rejects a model where two titles collapse to the same slug,
and why a title must contain at least one letter or digit.

Validation
----------

'cnotes check' (and the validate stage of every build) walks the model
and fails on the first defect: a missing title or summary, a topic with
no subtopics, an empty note, a code sample without a caption or source,
a title with no alphanumeric characters, or two titles sharing an
anchor. The error names the offending title.
`

const topicBuild = `Build Pipeline
==============

'cnotes build' runs five stages in a fixed order, each timed:

  validate    Check the content model (see 'cnotes docs content')
  render      Render index.html from the model and config
  assets      Publish assets/style.css (built-in or configured sheet)
  manifest    Write manifest.json
  verify      Parse the written page and check its structure

Two flags adjust where things come from and go: --config names a site
file outside the project root (its directory becomes the root), and
--out redirects the output directory for one build.

Every file is written atomically: the bytes go to a temporary file that
is fsynced and renamed into place, so an interrupted build never leaves
a truncated page behind.

The Manifest
------------

manifest.json records the build: a fresh UUID, the generator version, a
UTC timestamp, topic and subtopic counts, the published files with their
sizes, and per-stage timings. 'cnotes verify' uses it to detect a
directory built from an older model.

Verification
------------

The verify stage reparses the page it just wrote and checks that the
nav has exactly one entry per topic in model order, every nav link
resolves to a section id, ids are unique, section counts match the
model, and no empty note lists or hollow code figures were rendered.
The same checks run standalone via 'cnotes verify'.
`

const topicServe = `Preview Server
==============

'cnotes serve' rebuilds the page and then hosts the output directory on
localhost while you work:

    cnotes serve
    cnotes serve --port 3000
    cnotes serve --no-build

The port comes from serve.port in site.yaml (or CNOTES_PORT), with the
--port flag winning over both. --no-build skips the rebuild and serves
whatever the directory already holds; in that case the server refuses
to start when there is no index.html. Ctrl-C shuts it down cleanly.

Every response carries Cache-Control: no-store, so a rebuild followed
by a browser reload always shows the new page. A /healthz endpoint
answers "ok" for scripts that wait for the server to come up.

The server is authoring tooling only. The built page is fully static
and needs nothing but a file host to publish.
`
