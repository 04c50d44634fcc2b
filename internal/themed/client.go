package themed

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/rosagold/rosatheme/internal/theme"
)

// Client calls a remote theme service.
type Client struct {
	conn grpc.ClientConnInterface
}

// Dial connects to a theme service at addr without transport security. The
// service binds to loopback by default.
func Dial(addr string, opts ...grpc.DialOption) (*Client, *grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return NewClient(conn), conn, nil
}

// NewClient wraps an existing connection.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// GlobalStyles fetches the global styles for mode.
func (c *Client) GlobalStyles(ctx context.Context, mode theme.ColorMode) (theme.GlobalStyles, error) {
	out, err := c.invoke(ctx, MethodGetGlobalStyles, map[string]any{"mode": string(mode)})
	if err != nil {
		return theme.GlobalStyles{}, err
	}
	return theme.GlobalStyles{
		Body:           nestedStyle(out, "body"),
		Placeholder:    nestedStyle(out, "placeholder"),
		BorderDefaults: nestedStyle(out, "borderDefaults"),
	}, nil
}

// ComponentBaseStyle fetches a component's base style.
func (c *Client) ComponentBaseStyle(ctx context.Context, component string, mode theme.ColorMode) (theme.StyleMap, error) {
	out, err := c.invoke(ctx, MethodGetComponentBaseStyle, map[string]any{
		"component": component,
		"mode":      string(mode),
	})
	if err != nil {
		return nil, err
	}
	return theme.FromPlain(out), nil
}

// ComponentVariant fetches a component variant.
func (c *Client) ComponentVariant(ctx context.Context, component, variant string, mode theme.ColorMode) (theme.StyleMap, error) {
	out, err := c.invoke(ctx, MethodGetComponentVariant, map[string]any{
		"component": component,
		"variant":   variant,
		"mode":      string(mode),
	})
	if err != nil {
		return nil, err
	}
	return theme.FromPlain(out), nil
}

// ComponentSize fetches a component size.
func (c *Client) ComponentSize(ctx context.Context, component, size string) (theme.StyleMap, error) {
	out, err := c.invoke(ctx, MethodGetComponentSize, map[string]any{
		"component": component,
		"size":      size,
	})
	if err != nil {
		return nil, err
	}
	return theme.FromPlain(out), nil
}

// DefaultProps fetches a component's default props.
func (c *Client) DefaultProps(ctx context.Context, component string) (theme.DefaultProps, error) {
	out, err := c.invoke(ctx, MethodGetDefaultProps, map[string]any{"component": component})
	if err != nil {
		return theme.DefaultProps{}, err
	}
	variant, _ := out["variant"].(string)
	size, _ := out["size"].(string)
	return theme.DefaultProps{Variant: variant, Size: size}, nil
}

func (c *Client) invoke(ctx context.Context, method string, fields map[string]any) (map[string]any, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, method, in, out); err != nil {
		return nil, err
	}
	return out.AsMap(), nil
}

func nestedStyle(m map[string]any, key string) theme.StyleMap {
	nested, _ := m[key].(map[string]any)
	return theme.FromPlain(nested)
}
