// Package themed serves theme resolution over gRPC so renderers outside
// this process can query the style tables.
//
// Messages are google.protobuf.Struct values, which keeps the nested style
// maps schemaless on the wire.
package themed

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/rosagold/rosatheme/internal/theme"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "rosatheme.v1.ThemeService"

// Full method names.
const (
	MethodGetGlobalStyles       = "/" + ServiceName + "/GetGlobalStyles"
	MethodGetComponentBaseStyle = "/" + ServiceName + "/GetComponentBaseStyle"
	MethodGetComponentVariant   = "/" + ServiceName + "/GetComponentVariant"
	MethodGetComponentSize      = "/" + ServiceName + "/GetComponentSize"
	MethodGetDefaultProps       = "/" + ServiceName + "/GetDefaultProps"
)

// ThemeServiceServer is the server API of the theme service.
type ThemeServiceServer interface {
	GetGlobalStyles(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetComponentBaseStyle(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetComponentVariant(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetComponentSize(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDefaultProps(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterThemeServiceServer registers srv on s.
func RegisterThemeServiceServer(s grpc.ServiceRegistrar, srv ThemeServiceServer) {
	s.RegisterService(&themeServiceDesc, srv)
}

var themeServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ThemeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetGlobalStyles", Handler: unaryHandler(MethodGetGlobalStyles, ThemeServiceServer.GetGlobalStyles)},
		{MethodName: "GetComponentBaseStyle", Handler: unaryHandler(MethodGetComponentBaseStyle, ThemeServiceServer.GetComponentBaseStyle)},
		{MethodName: "GetComponentVariant", Handler: unaryHandler(MethodGetComponentVariant, ThemeServiceServer.GetComponentVariant)},
		{MethodName: "GetComponentSize", Handler: unaryHandler(MethodGetComponentSize, ThemeServiceServer.GetComponentSize)},
		{MethodName: "GetDefaultProps", Handler: unaryHandler(MethodGetDefaultProps, ThemeServiceServer.GetDefaultProps)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rosatheme/v1/theme.proto",
}

type unaryMethod func(ThemeServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ThemeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ThemeServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Server implements ThemeServiceServer on top of a Theme.
type Server struct {
	theme  *theme.Theme
	logger zerolog.Logger
}

// ServerOption configures the Server.
type ServerOption func(*Server)

// WithTheme serves t instead of the process-wide default theme.
func WithTheme(t *theme.Theme) ServerOption {
	return func(s *Server) {
		s.theme = t
	}
}

// NewServer creates the theme service implementation.
func NewServer(logger zerolog.Logger, opts ...ServerOption) *Server {
	s := &Server{
		theme:  theme.Default(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetGlobalStyles returns {body, placeholder, borderDefaults} for a mode.
func (s *Server) GetGlobalStyles(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	mode := s.modeField(req)
	g := s.theme.GlobalStyles(mode)
	return toStruct(map[string]any{
		"body":           g.Body.ToPlain(),
		"placeholder":    g.Placeholder.ToPlain(),
		"borderDefaults": g.BorderDefaults.ToPlain(),
	})
}

// GetComponentBaseStyle returns the base style of a component.
func (s *Server) GetComponentBaseStyle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	component, err := requiredField(req, "component")
	if err != nil {
		return nil, err
	}
	style, err := s.theme.ComponentBaseStyle(component, s.modeField(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(style.ToPlain())
}

// GetComponentVariant returns a named variant of a component.
func (s *Server) GetComponentVariant(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	component, err := requiredField(req, "component")
	if err != nil {
		return nil, err
	}
	variant, err := requiredField(req, "variant")
	if err != nil {
		return nil, err
	}
	style, err := s.theme.ComponentVariant(component, variant, s.modeField(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(style.ToPlain())
}

// GetComponentSize returns a named size of a component.
func (s *Server) GetComponentSize(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	component, err := requiredField(req, "component")
	if err != nil {
		return nil, err
	}
	size, err := requiredField(req, "size")
	if err != nil {
		return nil, err
	}
	style, err := s.theme.ComponentSize(component, size)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(style.ToPlain())
}

// GetDefaultProps returns {variant?, size?} for a component.
func (s *Server) GetDefaultProps(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	component, err := requiredField(req, "component")
	if err != nil {
		return nil, err
	}
	props, err := s.theme.DefaultProps(component)
	if err != nil {
		return nil, toStatus(err)
	}
	out := map[string]any{}
	if props.Variant != "" {
		out["variant"] = props.Variant
	}
	if props.Size != "" {
		out["size"] = props.Size
	}
	return toStruct(out)
}

// modeField reads the optional mode field. Malformed modes resolve as light.
func (s *Server) modeField(req *structpb.Struct) theme.ColorMode {
	raw := stringField(req, "mode")
	if raw == "" {
		return theme.DefaultColorMode
	}
	mode, err := theme.ParseColorMode(raw)
	if err != nil {
		s.logger.Debug().Str("mode", raw).Msg("invalid color mode, using light")
	}
	return mode
}

func stringField(req *structpb.Struct, name string) string {
	if req == nil {
		return ""
	}
	v, ok := req.GetFields()[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(v.GetStringValue())
}

func requiredField(req *structpb.Struct, name string) (string, error) {
	value := stringField(req, name)
	if value == "" {
		return "", status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	return value, nil
}

func toStruct(m map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode style: %v", err)
	}
	return out, nil
}

func toStatus(err error) error {
	if errors.Is(err, theme.ErrUnknownSelector) {
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
