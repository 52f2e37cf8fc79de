package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with genfs",
		Content: topicQuickstart,
	},
	{
		Name:    "fences",
		Title:   "Fenced Code Blocks",
		Summary: "The block syntax genfs extracts from generation output",
		Content: topicFences,
	},
	{
		Name:    "naming",
		Title:   "File Naming",
		Summary: "How extracted blocks become named files",
		Content: topicNaming,
	},
	{
		Name:    "sources",
		Title:   "Stream Sources",
		Summary: "Files, stdin, raw HTTP bodies, and SSE feeds",
		Content: topicSources,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "genfs.yaml schema, fields, and defaults",
		Content: topicConfig,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a project:

    genfs init

   This creates genfs.yaml and an example transcript.

2. Replay the example transcript through the pipeline:

    genfs run example-transcript.md --live

   The file tree repaints as each chunk is ingested; completed files are
   written to the export directory when the stream ends.

3. Stream from a generation backend:

    genfs run --url https://backend.example.com/generate --sse

4. Parse a saved transcript without streaming:

    genfs inspect example-transcript.md
`

const topicFences = `Fenced Code Blocks
==================

genfs scans generation output for fenced code blocks:

    ` + "```jsx" + `
    function Home() { return <div/>; }
    ` + "```" + `

An opening fence is a line of three backticks, optionally followed
immediately (no space) by a language tag. A closing fence is a line of
exactly three backticks. Everything between them is one file's content.

While the stream is still arriving, the buffer usually ends mid-block.
An unterminated fence at the tail is ignored until its closing fence
shows up in a later chunk, so partially delivered files never leak into
the tree. Extraction re-runs from scratch over the whole buffer on every
chunk; it keeps no state, which is what makes re-running it safe.

Recognized language tags map to file extensions (jsx, javascript, js,
typescript, ts, tsx, css, scss, html, json, markdown). Anything else
falls back to the js extension.
`

const topicNaming = `File Naming
===========

Each extracted block is named by, in order:

1. A function declaration: "function Navbar(" names the file Navbar.jsx.
2. A class declaration: "class Navbar " names the file Navbar.jsx.
3. A generated fallback: Generated<N>.<ext>, where N is the block's
   position in the transcript and <ext> comes from the fence tag.

Fallback names are pinned when a block is first extracted and never
change afterwards, even as more blocks stream in.

One file named App.jsx is guaranteed in every tree: if no block produces
it, a placeholder carrying the raw transcript is appended so there is
always an entry point to render.
`

const topicSources = `Stream Sources
==============

genfs pulls text one chunk at a time from any of:

  file        genfs run transcript.md
  stdin       some-backend | genfs run -
  HTTP body   genfs run --url https://backend/generate
  SSE feed    genfs run --url https://backend/generate --sse

The SSE reader understands provider event feeds: it decodes data: lines,
keeps only content_block_delta text deltas, and treats [DONE] or the end
of the feed as a clean close. Malformed events are skipped.

A non-2xx response or a mid-stream transport failure ends the session:
the tree is replaced by a single error.txt carrying the failure message.
Restart the run to retry.
`

const topicConfig = `Configuration Reference
=======================

genfs looks for genfs.yaml in the working directory. All fields are
optional except name.

    name: my-site          # project name (required)
    chunk-size: 4096       # bytes per read for raw sources (0 = default)
    export-dir: generated  # where completed sessions are written
    log-level: error       # quiet, error, info, debug
    preview: false         # print highlighted file contents after a run
    source:
      url: ""              # default backend endpoint
      format: text         # text (raw bytes) or sse (event stream)

Command-line flags override the corresponding config fields.
`
