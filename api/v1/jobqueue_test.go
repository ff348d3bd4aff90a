package v1_test

import (
	"testing"
	"time"

	api "github.com/nixpig/jobqueue/api/v1"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestJobServiceDescriptor(t *testing.T) {
	t.Parallel()

	d, err := protoregistry.GlobalFiles.FindDescriptorByName(
		"jobqueue.v1.JobService",
	)
	if err != nil {
		t.Fatalf("expected service to be registered: got '%v'", err)
	}

	service, ok := d.(protoreflect.ServiceDescriptor)
	if !ok {
		t.Fatalf("expected service descriptor: got '%T'", d)
	}

	t.Run("Test service name", func(t *testing.T) {
		if got := string(service.FullName()); got != api.JobService_ServiceDesc.ServiceName {
			t.Errorf(
				"expected service name: got '%s', want '%s'",
				got,
				api.JobService_ServiceDesc.ServiceName,
			)
		}
	})

	t.Run("Test unary methods", func(t *testing.T) {
		for _, m := range api.JobService_ServiceDesc.Methods {
			md := service.Methods().ByName(protoreflect.Name(m.MethodName))
			if md == nil {
				t.Errorf("expected method in descriptor: '%s'", m.MethodName)
				continue
			}

			if md.IsStreamingServer() || md.IsStreamingClient() {
				t.Errorf("expected unary method: '%s'", m.MethodName)
			}
		}
	})

	t.Run("Test streaming methods", func(t *testing.T) {
		for _, s := range api.JobService_ServiceDesc.Streams {
			md := service.Methods().ByName(protoreflect.Name(s.StreamName))
			if md == nil {
				t.Errorf("expected stream in descriptor: '%s'", s.StreamName)
				continue
			}

			if !md.IsStreamingServer() || md.IsStreamingClient() {
				t.Errorf("expected server stream: '%s'", s.StreamName)
			}

			if md.Output().FullName() != "jobqueue.v1.Notification" {
				t.Errorf("expected notification output: got '%s'", md.Output().FullName())
			}
		}

		total := len(api.JobService_ServiceDesc.Methods) +
			len(api.JobService_ServiceDesc.Streams)

		if got := service.Methods().Len(); got != total {
			t.Errorf("expected method count: got '%d', want '%d'", got, total)
		}
	})
}

func TestMessages(t *testing.T) {
	t.Parallel()

	t.Run("Test submit request wire round trip", func(t *testing.T) {
		want := &api.SubmitJobRequest{
			Id:         7,
			Session:    "4b0f6f5a-4f4e-4c55-9d1d-8e1a6f2c3b7d",
			Category:   api.Category_CATEGORY_CHECKSUM,
			Algorithm:  api.Algorithm_ALGORITHM_SHA1,
			InputPath:  "/tmp/in",
			OutputPath: "/tmp/in.sha1",
			Overwrite:  true,
		}

		data, err := proto.Marshal(want)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		got := &api.SubmitJobRequest{}
		if err := proto.Unmarshal(data, got); err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if !proto.Equal(got, want) {
			t.Errorf("expected request: got '%v', want '%v'", got, want)
		}
	})

	t.Run("Test list response carries timestamps", func(t *testing.T) {
		queuedAt := time.Date(2025, 1, 2, 3, 4, 5, 6, time.UTC)

		want := &api.ListJobsResponse{
			Entries: []*api.JobEntry{{
				Id:        1,
				Submitter: "alice/session",
				QueuedAt:  timestamppb.New(queuedAt),
			}},
			HasMore: true,
		}

		data, err := proto.Marshal(want)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		got := &api.ListJobsResponse{}
		if err := proto.Unmarshal(data, got); err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if !got.GetHasMore() || len(got.GetEntries()) != 1 {
			t.Fatalf("expected one entry and more: got '%v'", got)
		}

		if at := got.GetEntries()[0].GetQueuedAt().AsTime(); !at.Equal(queuedAt) {
			t.Errorf("expected queued at: got '%v', want '%v'", at, queuedAt)
		}
	})

	t.Run("Test enum names", func(t *testing.T) {
		if got := api.Category_CATEGORY_COMPRESS.String(); got != "CATEGORY_COMPRESS" {
			t.Errorf("expected category name: got '%s'", got)
		}

		if got := api.Algorithm_ALGORITHM_MD5.String(); got != "ALGORITHM_MD5" {
			t.Errorf("expected algorithm name: got '%s'", got)
		}

		if got := api.Algorithm(9).String(); got != "9" {
			t.Errorf("expected unknown algorithm number: got '%s'", got)
		}
	})
}
