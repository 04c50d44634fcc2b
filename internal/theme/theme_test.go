package theme

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGlobalStylesDifferByMode(t *testing.T) {
	t.Parallel()

	th := Default()
	light := th.GlobalStyles(ModeLight)
	dark := th.GlobalStyles(ModeDark)

	for _, g := range []GlobalStyles{light, dark} {
		for selector, style := range g.BySelector() {
			if len(style) == 0 {
				t.Fatalf("global %q is empty", selector)
			}
			style.Walk(func(path []string, property, value string) {
				if value == "" {
					t.Fatalf("global %q property %s is empty", selector, property)
				}
			})
		}
	}

	if light.Body.String("bg") == dark.Body.String("bg") {
		t.Fatalf("body bg should differ between modes, both %q", light.Body.String("bg"))
	}
	if light.Body.String("color") == dark.Body.String("color") {
		t.Fatalf("body color should differ between modes, both %q", light.Body.String("color"))
	}
}

func TestGlobalStylesSnapshots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode ColorMode
		want GlobalStyles
	}{
		{
			mode: ModeLight,
			want: GlobalStyles{
				Body:           StyleMap{"bg": "neutral.50", "color": "neutral.800", "fontFamily": "body", "lineHeight": "base"},
				Placeholder:    StyleMap{"color": "neutral.400"},
				BorderDefaults: StyleMap{"borderColor": "neutral.200"},
			},
		},
		{
			mode: ModeDark,
			want: GlobalStyles{
				Body:           StyleMap{"bg": "gray.900", "color": "gray.50", "fontFamily": "body", "lineHeight": "base"},
				Placeholder:    StyleMap{"color": "gray.400"},
				BorderDefaults: StyleMap{"borderColor": "gray.600"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()
			got := Default().GlobalStyles(tt.mode)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("GlobalStyles(%s) mismatch (-want +got):\n%s", tt.mode, diff)
			}
		})
	}
}

func TestInvalidModeFallsBackToLight(t *testing.T) {
	t.Parallel()

	th := Default()
	if diff := cmp.Diff(th.GlobalStyles(ModeLight), th.GlobalStyles(ColorMode("sepia"))); diff != "" {
		t.Fatalf("unknown mode should resolve as light (-light +got):\n%s", diff)
	}

	light, err := th.ComponentVariant(ComponentButton, "ghost", ModeLight)
	require.NoError(t, err)
	got, err := th.ComponentVariant(ComponentButton, "ghost", "")
	require.NoError(t, err)
	require.Equal(t, light, got)
}

func TestComponentVariantsDefined(t *testing.T) {
	t.Parallel()

	th := Default()
	pairs := map[string][]string{
		ComponentButton: {"solid", "ghost", "gold"},
		ComponentInput:  {"filled"},
	}

	for component, variants := range pairs {
		spec, err := th.Component(component)
		require.NoError(t, err)
		require.ElementsMatch(t, variants, spec.VariantNames())

		for _, variant := range variants {
			for _, mode := range ColorModes {
				style, err := th.ComponentVariant(component, variant, mode)
				if err != nil {
					t.Fatalf("ComponentVariant(%s, %s, %s): %v", component, variant, mode, err)
				}
				if len(style) == 0 {
					t.Fatalf("ComponentVariant(%s, %s, %s) returned an empty style", component, variant, mode)
				}
			}
		}
	}
}

func TestComponentVariantUnknown(t *testing.T) {
	t.Parallel()

	th := Default()
	tests := []struct {
		name      string
		component string
		variant   string
		want      error
	}{
		{name: "unknown button variant", component: ComponentButton, variant: "outline", want: ErrUnknownVariant},
		{name: "card has no variants", component: ComponentCard, variant: "solid", want: ErrUnknownVariant},
		{name: "input case sensitive", component: ComponentInput, variant: "Filled", want: ErrUnknownVariant},
		{name: "unknown component", component: "Tooltip", variant: "solid", want: ErrUnknownComponent},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := th.ComponentVariant(tt.component, tt.variant, ModeDark)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ComponentVariant(%s, %s) error = %v, want %v", tt.component, tt.variant, err, tt.want)
			}
			if !errors.Is(err, ErrUnknownSelector) {
				t.Fatalf("error %v should match ErrUnknownSelector", err)
			}
			var selErr *SelectorError
			if !errors.As(err, &selErr) {
				t.Fatalf("error %v should be a *SelectorError", err)
			}
		})
	}
}

func TestButtonGhostByMode(t *testing.T) {
	t.Parallel()

	th := Default()
	light, err := th.ComponentVariant(ComponentButton, "ghost", ModeLight)
	require.NoError(t, err)
	dark, err := th.ComponentVariant(ComponentButton, "ghost", ModeDark)
	require.NoError(t, err)

	require.Equal(t, "brand.500", light.String("color"))
	require.Equal(t, "brand.300", dark.String("color"))

	lightHover, ok := light.Nested("_hover")
	require.True(t, ok)
	darkHover, ok := dark.Nested("_hover")
	require.True(t, ok)
	require.Equal(t, "brand.50", lightHover.String("bg"))
	require.Equal(t, "gray.700", darkHover.String("bg"))
	require.Equal(t, "translateY(-1px)", darkHover.String("transform"))
}

func TestButtonBaseStyleIgnoresMode(t *testing.T) {
	t.Parallel()

	th := Default()
	light, err := th.ComponentBaseStyle(ComponentButton, ModeLight)
	require.NoError(t, err)
	dark, err := th.ComponentBaseStyle(ComponentButton, ModeDark)
	require.NoError(t, err)

	if diff := cmp.Diff(light, dark); diff != "" {
		t.Fatalf("Button base style should not depend on mode (-light +dark):\n%s", diff)
	}
	require.Equal(t, "lg", light.String("borderRadius"))
}

func TestCardAndModalBaseStyleByMode(t *testing.T) {
	t.Parallel()

	th := Default()
	tests := []struct {
		component string
		part      string
		lightBg   string
		darkBg    string
	}{
		{component: ComponentCard, part: "container", lightBg: "white", darkBg: "gray.800"},
		{component: ComponentModal, part: "dialog", lightBg: "white", darkBg: "gray.800"},
	}

	for _, tt := range tests {
		for mode, want := range map[ColorMode]string{ModeLight: tt.lightBg, ModeDark: tt.darkBg} {
			base, err := th.ComponentBaseStyle(tt.component, mode)
			require.NoError(t, err)
			part, ok := base.Nested(tt.part)
			if !ok {
				t.Fatalf("%s base style has no %q part", tt.component, tt.part)
			}
			if got := part.String("bg"); got != want {
				t.Fatalf("%s %s bg = %q, want %q", tt.component, mode, got, want)
			}
		}
	}
}

func TestComponentBaseStyleEmptyForInput(t *testing.T) {
	t.Parallel()

	base, err := Default().ComponentBaseStyle(ComponentInput, ModeDark)
	require.NoError(t, err)
	require.NotNil(t, base)
	require.Empty(t, base)

	_, err = Default().ComponentBaseStyle("Tooltip", ModeDark)
	require.ErrorIs(t, err, ErrUnknownComponent)
}

func TestComponentSizeModeIndependent(t *testing.T) {
	t.Parallel()

	th := Default()
	for _, size := range []string{"sm", "md", "lg"} {
		var encoded [][]byte
		for _, mode := range ColorModes {
			resolved, err := th.ResolveComponent(ComponentButton, Props{Size: size}, mode)
			require.NoError(t, err)
			data, err := json.Marshal(resolved.SizeStyle)
			require.NoError(t, err)
			encoded = append(encoded, data)
		}
		if string(encoded[0]) != string(encoded[1]) {
			t.Fatalf("size %s differs by mode: %s vs %s", size, encoded[0], encoded[1])
		}

		direct, err := th.ComponentSize(ComponentButton, size)
		require.NoError(t, err)
		data, err := json.Marshal(direct)
		require.NoError(t, err)
		require.Equal(t, string(encoded[0]), string(data))
	}

	_, err := th.ComponentSize(ComponentButton, "xl")
	require.ErrorIs(t, err, ErrUnknownSize)
	require.ErrorIs(t, err, ErrUnknownSelector)
}

func TestDefaultPropsInput(t *testing.T) {
	t.Parallel()

	th := Default()
	props, err := th.DefaultProps(ComponentInput)
	require.NoError(t, err)
	require.Equal(t, DefaultProps{Variant: "filled"}, props)

	for _, mode := range ColorModes {
		style, err := th.ComponentVariant(ComponentInput, props.Variant, mode)
		require.NoError(t, err)
		field, ok := style.Nested("field")
		require.True(t, ok)
		require.NotEmpty(t, field.String("bg"))
	}

	buttonProps, err := th.DefaultProps(ComponentButton)
	require.NoError(t, err)
	require.Equal(t, DefaultProps{}, buttonProps)
}

func TestResolveComponentAppliesDefaults(t *testing.T) {
	t.Parallel()

	th := Default()
	resolved, err := th.ResolveComponent(ComponentInput, Props{}, ModeDark)
	require.NoError(t, err)
	require.Equal(t, "filled", resolved.Variant)
	require.Equal(t, ModeDark, resolved.Mode)
	require.NotEmpty(t, resolved.VariantStyle)
	require.Nil(t, resolved.SizeStyle)

	resolved, err = th.ResolveComponent(ComponentButton, Props{Variant: "gold", Size: "lg"}, "bogus")
	require.NoError(t, err)
	require.Equal(t, ModeLight, resolved.Mode)
	require.Equal(t, "gold.400", resolved.VariantStyle.String("bg"))
	require.Equal(t, "12", resolved.SizeStyle.String("h"))

	_, err = th.ResolveComponent(ComponentButton, Props{Variant: "link"}, ModeLight)
	require.ErrorIs(t, err, ErrUnknownVariant)
}

func TestResolversIdempotent(t *testing.T) {
	t.Parallel()

	th := Default()
	for _, component := range th.Components() {
		spec, err := th.Component(component)
		require.NoError(t, err)
		for _, mode := range ColorModes {
			first, err := th.ComponentBaseStyle(component, mode)
			require.NoError(t, err)
			second, err := th.ComponentBaseStyle(component, mode)
			require.NoError(t, err)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Fatalf("%s base not idempotent:\n%s", component, diff)
			}
			for _, variant := range spec.VariantNames() {
				first, _ := th.ComponentVariant(component, variant, mode)
				second, _ := th.ComponentVariant(component, variant, mode)
				if diff := cmp.Diff(first, second); diff != "" {
					t.Fatalf("%s %s not idempotent:\n%s", component, variant, diff)
				}
			}
		}
	}

	if diff := cmp.Diff(th.GlobalStyles(ModeDark), th.GlobalStyles(ModeDark)); diff != "" {
		t.Fatalf("GlobalStyles not idempotent:\n%s", diff)
	}
}

func TestResolvedStylesAreCopies(t *testing.T) {
	t.Parallel()

	th := New()
	first, err := th.ComponentVariant(ComponentButton, "solid", ModeLight)
	require.NoError(t, err)
	first["bg"] = "#000000"
	hover, _ := first.Nested("_hover")
	hover["bg"] = "#000000"

	second, err := th.ComponentVariant(ComponentButton, "solid", ModeDark)
	require.NoError(t, err)
	require.Equal(t, "brand.200", second.String("bg"))
	secondHover, _ := second.Nested("_hover")
	require.Equal(t, "brand.300", secondHover.String("bg"))

	palette := th.Palette()
	brand, _ := palette.Group("brand")
	brand.Scale[2] = "#000000"
	again, _ := th.Palette().Lookup("brand.200")
	require.Equal(t, "#E8B4CB", again)
}

func TestConcurrentResolution(t *testing.T) {
	t.Parallel()

	th := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mode := ColorModes[i%len(ColorModes)]
			for j := 0; j < 100; j++ {
				_ = th.GlobalStyles(mode)
				if _, err := th.ResolveComponent(ComponentButton, Props{Variant: "ghost", Size: "md"}, mode); err != nil {
					t.Errorf("ResolveComponent: %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestComponentsSorted(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"Button", "Card", "Input", "Modal"}, Default().Components())
}
