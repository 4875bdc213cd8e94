package bq

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/bigquery/storage/managedwriter"
	"cloud.google.com/go/bigquery/storage/managedwriter/adapt"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/guardian/github-lens/pkg/domain/interfaces"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/utils/safe"
)

// appendBatchSize bounds one AppendRows call well below the 10MB request limit.
const appendBatchSize = 500

type Client struct {
	bqClient *bigquery.Client
	mwClient *managedwriter.Client
	project  string
	dataset  string
}

var _ interfaces.BigQuery = (*Client)(nil)

func New(ctx context.Context, projectID types.GoogleProjectID, datasetID types.BQDatasetID, options ...option.ClientOption) (*Client, error) {
	mwClient, err := managedwriter.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery storage write client", goerr.V("project_id", projectID))
	}

	bqClient, err := bigquery.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		safe.Close(mwClient)
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("project_id", projectID))
	}

	return &Client{
		bqClient: bqClient,
		mwClient: mwClient,
		project:  projectID.String(),
		dataset:  datasetID.String(),
	}, nil
}

func (x *Client) Close() error {
	mwErr := x.mwClient.Close()
	bqErr := x.bqClient.Close()
	return errors.Join(mwErr, bqErr)
}

func (x *Client) table(tableID types.BQTableID) *bigquery.Table {
	return x.bqClient.Dataset(x.dataset).Table(tableID.String())
}

func (x *Client) CreateTable(ctx context.Context, tableID types.BQTableID, md *bigquery.TableMetadata) error {
	if err := x.table(tableID).Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("dataset", x.dataset), goerr.V("table", tableID))
	}
	return nil
}

// GetMetadata returns nil without error when the table does not exist.
func (x *Client) GetMetadata(ctx context.Context, tableID types.BQTableID) (*bigquery.TableMetadata, error) {
	md, err := x.table(tableID).Metadata(ctx)
	if err != nil {
		var gErr *googleapi.Error
		if errors.As(err, &gErr) && gErr.Code == http.StatusNotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get table metadata", goerr.V("dataset", x.dataset), goerr.V("table", tableID))
	}
	return md, nil
}

func (x *Client) UpdateTable(ctx context.Context, tableID types.BQTableID, md bigquery.TableMetadataToUpdate, eTag string) error {
	if _, err := x.table(tableID).Update(ctx, md, eTag); err != nil {
		return goerr.Wrap(err, "failed to update table", goerr.V("dataset", x.dataset), goerr.V("table", tableID))
	}
	return nil
}

// Insert appends rows through the storage write API. Each row is encoded as
// JSON first, so field names follow the json tags that schema was inferred from.
func (x *Client) Insert(ctx context.Context, tableID types.BQTableID, schema bigquery.Schema, rows []any) error {
	if len(rows) == 0 {
		return nil
	}

	storageSchema, err := adapt.BQSchemaToStorageTableSchema(schema)
	if err != nil {
		return goerr.Wrap(err, "failed to convert schema", goerr.V("table", tableID))
	}
	descriptor, err := adapt.StorageSchemaToProto2Descriptor(storageSchema, "root")
	if err != nil {
		return goerr.Wrap(err, "failed to convert schema to descriptor", goerr.V("table", tableID))
	}
	messageDescriptor, ok := descriptor.(protoreflect.MessageDescriptor)
	if !ok {
		return goerr.New("adapted descriptor is not a message descriptor", goerr.V("table", tableID))
	}
	descriptorProto, err := adapt.NormalizeDescriptor(messageDescriptor)
	if err != nil {
		return goerr.Wrap(err, "failed to normalize descriptor", goerr.V("table", tableID))
	}

	encoded := make([][]byte, 0, len(rows))
	for i, row := range rows {
		b, err := encodeRow(messageDescriptor, row)
		if err != nil {
			return goerr.Wrap(err, "failed to encode row", goerr.V("table", tableID), goerr.V("index", i))
		}
		encoded = append(encoded, b)
	}

	ms, err := x.mwClient.NewManagedStream(ctx,
		managedwriter.WithDestinationTable(managedwriter.TableParentFromParts(x.project, x.dataset, tableID.String())),
		managedwriter.WithSchemaDescriptor(descriptorProto),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create managed stream", goerr.V("table", tableID))
	}
	defer safe.Close(ms)

	var results []*managedwriter.AppendResult
	for start := 0; start < len(encoded); start += appendBatchSize {
		end := min(start+appendBatchSize, len(encoded))
		r, err := ms.AppendRows(ctx, encoded[start:end])
		if err != nil {
			return goerr.Wrap(err, "failed to append rows", goerr.V("table", tableID), goerr.V("offset", start))
		}
		results = append(results, r)
	}

	for _, r := range results {
		if _, err := r.FullResponse(ctx); err != nil {
			return goerr.Wrap(err, "failed to get append result", goerr.V("table", tableID))
		}
	}
	return nil
}

func encodeRow(md protoreflect.MessageDescriptor, row any) ([]byte, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal row")
	}
	sanitized, err := sanitizeProtoJSON(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to sanitize row", goerr.V("raw", string(raw)))
	}

	message := dynamicpb.NewMessage(md)
	if err := protojson.Unmarshal(sanitized, message); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal row into proto message", goerr.V("raw", string(raw)))
	}

	b, err := proto.Marshal(message)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal proto message")
	}
	return b, nil
}

// IsSchemaMismatchError reports whether err is the storage API rejecting rows
// that carry fields the table does not have yet.
func IsSchemaMismatchError(err error) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if s, ok := status.FromError(err); ok && s.Code() == codes.InvalidArgument {
			return strings.Contains(s.Message(), "Input schema has more fields than BigQuery schema")
		}
	}
	return false
}

func sanitizeProtoJSON(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	return json.Marshal(sanitizeProtoJSONValue(data))
}

func sanitizeProtoJSONValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(val))
		for key, value := range val {
			res[protoFieldJSONName(key)] = sanitizeProtoJSONValue(value)
		}
		return res
	case []any:
		for i := range val {
			val[i] = sanitizeProtoJSONValue(val[i])
		}
		return val
	default:
		return v
	}
}

// protoFieldJSONName replaces keys that are not valid proto field names with
// a stable encoded form.
func protoFieldJSONName(name string) string {
	if protoreflect.Name(name).IsValid() {
		return name
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(name))
	encoded = strings.NewReplacer("+", "_", "/", "_", "=", "").Replace(encoded)
	return "col_" + encoded
}
