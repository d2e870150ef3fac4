package settings

import(
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/skypies/flightplot/settings")

// File is a Store backed by a single JSON document on local disk.
type File struct {
	Path string
}

func (f File)Load(ctx context.Context) (Document, error) {
	_,span := tracer.Start(ctx, "settings.File.Load")
	defer span.End()
	span.SetAttributes(attribute.String("path", f.Path))

	b,err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return Document{}, nil
	} else if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Document{}, fmt.Errorf("settings: read %s: %w", f.Path, err)
	}

	doc,err := Unmarshal(b)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return doc, fmt.Errorf("%s: %w", f.Path, err)
	}
	return doc, nil
}

// Save writes to a temp file alongside, then renames over the original.
func (f File)Save(ctx context.Context, doc Document) error {
	_,span := tracer.Start(ctx, "settings.File.Save")
	defer span.End()
	span.SetAttributes(attribute.String("path", f.Path), attribute.Int("records", len(doc)))

	b,err := Marshal(doc)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	tmp,err := os.CreateTemp(filepath.Dir(f.Path), filepath.Base(f.Path)+".*")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _,err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("settings: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("settings: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}
