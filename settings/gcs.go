package settings

import(
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/api/option"
)

// GCS is a Store backed by one object in a Cloud Storage bucket, so a user's
// preferences follow them between machines.
type GCS struct {
	Client *storage.Client
	Bucket string
	Object string
}

func (g GCS)String() string { return fmt.Sprintf("gs://%s/%s", g.Bucket, g.Object) }

func (g GCS)Load(ctx context.Context) (Document, error) {
	ctx,span := tracer.Start(ctx, "settings.GCS.Load")
	defer span.End()
	span.SetAttributes(attribute.String("object", g.String()))

	rdr,err := g.Client.Bucket(g.Bucket).Object(g.Object).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return Document{}, nil
	} else if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Document{}, fmt.Errorf("settings: open %s: %w", g, err)
	}
	defer rdr.Close()

	b,err := io.ReadAll(rdr)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Document{}, fmt.Errorf("settings: read %s: %w", g, err)
	}
	return Unmarshal(b)
}

func (g GCS)Save(ctx context.Context, doc Document) error {
	ctx,span := tracer.Start(ctx, "settings.GCS.Save")
	defer span.End()
	span.SetAttributes(attribute.String("object", g.String()), attribute.Int("records", len(doc)))

	b,err := Marshal(doc)
	if err != nil {
		return err
	}

	w := g.Client.Bucket(g.Bucket).Object(g.Object).NewWriter(ctx)
	w.ContentType = "application/json"
	if _,err := w.Write(b); err != nil {
		w.Close()
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("settings: write %s: %w", g, err)
	}
	if err := w.Close(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("settings: close %s: %w", g, err)
	}
	return nil
}

// {{{ Open

// ParseGCSPath splits "gs://bucket/path/to/object".
func ParseGCSPath(path string) (bucket, object string, err error) {
	rest := strings.TrimPrefix(path, "gs://")
	if rest == path {
		return "", "", fmt.Errorf("settings: %q is not a gs:// path", path)
	}
	bucket,object,found := strings.Cut(rest, "/")
	if !found || bucket == "" || object == "" {
		return "", "", fmt.Errorf("settings: %q: want gs://bucket/object", path)
	}
	return bucket, object, nil
}

// Open returns a store for path: a GCS object for gs:// paths, a local file
// otherwise. The returned func releases any client that was created.
func Open(ctx context.Context, path string, opts ...option.ClientOption) (Store, func() error, error) {
	noop := func() error { return nil }

	if !strings.HasPrefix(path, "gs://") {
		return File{Path: path}, noop, nil
	}

	bucket,object,err := ParseGCSPath(path)
	if err != nil {
		return nil, noop, err
	}
	client,err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, noop, fmt.Errorf("settings: storage client: %w", err)
	}
	return GCS{Client: client, Bucket: bucket, Object: object}, client.Close, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
