package netplan

import (
	"bytes"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
	"gopkg.in/yaml.v2"

	"github.com/babydepdev/otp-network-setting-go/src/internal/config"
	"github.com/babydepdev/otp-network-setting-go/src/internal/errors"
	"github.com/babydepdev/otp-network-setting-go/src/internal/hashing"
)

// ArtifactContentType is the MIME type the artifact is served with.
const ArtifactContentType = "text/yaml"

// SerializerOptions configure artifact rendering. BannerTemplate supports
// the variables {{app}}, {{version}} and {{filename}}; an empty template
// disables the banner.
type SerializerOptions struct {
	Filename       string
	BannerTemplate string
	AppName        string
	AppVersion     string
}

// Serializer renders assembled documents to the downloadable artifact. The
// banner is rendered once at construction so serialization itself is
// deterministic.
type Serializer struct {
	filename string
	banner   string
}

// NewSerializer creates a serializer. An empty filename falls back to the
// default artifact name.
func NewSerializer(opts SerializerOptions) *Serializer {
	s := &Serializer{filename: opts.Filename}
	if s.filename == "" {
		s.filename = config.DefaultOutputFilename
	}

	if opts.BannerTemplate != "" {
		t := fasttemplate.New(opts.BannerTemplate, "{{", "}}")
		rendered := t.ExecuteString(map[string]interface{}{
			"app":      opts.AppName,
			"version":  opts.AppVersion,
			"filename": s.filename,
		})
		s.banner = commentize(rendered)
	}

	return s
}

// Filename returns the artifact filename this serializer renders for.
func (s *Serializer) Filename() string {
	return s.filename
}

// Serialize renders the document to its canonical textual form: the optional
// banner followed by YAML with stable key order per fragment and sorted
// device names. No validation happens here; the assembler's invariant
// guarantees well-formed input.
func (s *Serializer) Serialize(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.writeTo(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Artifact renders the document and wraps it with its download metadata.
// The checksum is the MD5 of the rendered bytes; callers use it as the ETag.
func (s *Serializer) Artifact(doc *Document) (*Artifact, error) {
	var buf bytes.Buffer
	proxy := hashing.NewMD5WriterProxy(&buf)

	if err := s.writeTo(proxy, doc); err != nil {
		return nil, err
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		return nil, errors.NewDocumentError("failed to fingerprint artifact", err)
	}

	return &Artifact{
		Filename:    s.filename,
		ContentType: ArtifactContentType,
		Bytes:       buf.Bytes(),
		Checksum:    checksum,
	}, nil
}

func (s *Serializer) writeTo(w io.Writer, doc *Document) error {
	if doc == nil {
		return errors.New(errors.ErrCodeDocument, "document is required")
	}

	if s.banner != "" {
		if _, err := io.WriteString(w, s.banner); err != nil {
			return errors.NewDocumentError("failed to write artifact banner", err)
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.NewDocumentError("failed to encode document", err)
	}

	if _, err := w.Write(data); err != nil {
		return errors.NewDocumentError("failed to write document", err)
	}

	return nil
}

// commentize turns rendered banner text into YAML comment lines.
func commentize(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString("# ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Artifact is the serialized document plus its download metadata.
type Artifact struct {
	Filename    string
	ContentType string
	Bytes       []byte
	Checksum    string
}

// GetChecksum implements hashing.ChecksumProvider.
func (a *Artifact) GetChecksum() (string, error) {
	return a.Checksum, nil
}
