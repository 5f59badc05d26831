package catalog

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/product-showcase/internal/scene"
)

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

var (
	pink = rgb(0xff2d75)
	cyan = rgb(0x00f0ff)
)

// Default returns the storefront catalog. Album and photo box have real
// external previews; the rest render their shape group.
func Default() *Catalog {
	c, err := New(
		&Entry{
			ID:          "album",
			Title:       "Album Fotografico Premium",
			Description: "Nuestro album insignia con pasta dura, 30 paginas de papel fotografico premium y acabado en piel sintetica. Cada pagina esta cuidadosamente impresa en alta resolucion.",
			Specs: []Spec{
				{"Material", "Piel Sintetica"},
				{"Paginas", "20-60"},
				{"Tamano", "30x30 cm"},
				{"Acabado", "Premium Mate"},
			},
			PreviewURL: "https://fotolibro.invitados.org/",
			Build:      Album,
		},
		&Entry{
			ID:          "box",
			Title:       "Caja de Fotolibro Premium",
			Description: "Caja elegante con compartimentos para organizar tus fotos impresas. Incluye separadores tematicos y acabado en textura premium.",
			Specs: []Spec{
				{"Capacidad", "50-100 Fotos"},
				{"Material", "Cartulina Rigida"},
				{"Acabado", "Mate Texturizado"},
				{"Extras", "Divisores"},
			},
			PreviewURL: "https://caja-fotolibro.invitados.org/",
			Build:      PhotoBox,
		},
		&Entry{
			ID:          "usb",
			Title:       "USB Personalizada",
			Description: "Memoria USB grabada con laser con tu nombre y fecha. Almacena todas tus fotos y videos en alta definicion con transferencia rapida.",
			Specs: []Spec{
				{"Capacidad", "16/32/64 GB"},
				{"Tipo", "USB 3.0"},
				{"Grabado", "Laser"},
				{"Material", "Metal/Madera"},
			},
			Build: USB,
		},
		&Entry{
			ID:          "usbbox",
			Title:       "Caja USB Premium",
			Description: "Estuche elegante de madera o acrilico con espuma moldeada para presentar tu USB personalizada con maximo estilo.",
			Specs: []Spec{
				{"Material", "Madera/Acrilico"},
				{"Interior", "Espuma Moldeada"},
				{"Cierre", "Magnetico"},
				{"Grabado", "Tapa Personalizada"},
			},
			Build: USBBox,
		},
		&Entry{
			ID:          "prints",
			Title:       "Fotos Impresas Clasicas",
			Description: "Impresiones fotograficas en papel premium de 300 DPI. Disponibles en acabado mate o brillante en multiples tamanos.",
			Specs: []Spec{
				{"Resolucion", "300 DPI"},
				{"Papel", "Premium Photo"},
				{"Acabado", "Mate/Brillo"},
				{"Tamanos", "4x6 a 11x14"},
			},
			Build: Prints,
		},
	)
	if err != nil {
		panic(err)
	}
	// Product cards name some products differently.
	for name, id := range map[string]string{"photobox": "box", "package": "album"} {
		if err := c.Alias(name, id); err != nil {
			panic(err)
		}
	}
	return c
}

func Album() *scene.Group {
	g := scene.NewGroup("album")
	body := &scene.Mesh{
		Name: "body", Kind: scene.Box, Size: mgl64.Vec3{3.5, 4.5, 0.5},
		Color:     rgb(0x2a1040),
		EdgeColor: cyan, EdgeOpacity: 0.3,
	}
	g.Add(body)
	for i := 0; i < 8; i++ {
		g.Add(&scene.Mesh{
			Name: "page", Kind: scene.Plane, Size: mgl64.Vec3{3.2, 4.2, 0},
			Position: mgl64.Vec3{0, 0, -0.2 + float64(i)*0.03},
			Color:    rgb(0xf5f0e8), Opacity: 0.9,
		})
	}
	g.Add(&scene.Mesh{
		Name: "spine", Kind: scene.Box, Size: mgl64.Vec3{0.2, 4.5, 0.55},
		Position: mgl64.Vec3{-1.85, 0, 0},
		Color:    pink, Emissive: 0.3,
	})
	return g
}

func PhotoBox() *scene.Group {
	g := scene.NewGroup("box")
	g.Add(&scene.Mesh{
		Name: "body", Kind: scene.Box, Size: mgl64.Vec3{4, 1.5, 4},
		Color:     rgb(0x1a2a3a),
		EdgeColor: cyan, EdgeOpacity: 0.3,
	})
	g.Add(&scene.Mesh{
		Name: "lid", Kind: scene.Box, Size: mgl64.Vec3{4.1, 0.3, 4.1},
		Position: mgl64.Vec3{0, 0.9, 0},
		Color:    rgb(0x1a2a3a),
	})
	ribbon := &scene.Mesh{
		Name: "ribbon", Kind: scene.Box, Size: mgl64.Vec3{4.2, 0.1, 0.3},
		Position: mgl64.Vec3{0, 1.1, 0},
		Color:    pink, Emissive: 0.3,
	}
	cross := ribbon.Clone()
	cross.Name = "ribbon-cross"
	cross.Rotation = mgl64.Vec3{0, math.Pi / 2, 0}
	g.Add(ribbon, cross)
	return g
}

func USB() *scene.Group {
	g := scene.NewGroup("usb")
	g.Add(&scene.Mesh{
		Name: "body", Kind: scene.Box, Size: mgl64.Vec3{1, 0.5, 3},
		Color:     rgb(0x3a3a4a),
		EdgeColor: cyan, EdgeOpacity: 0.4,
	})
	g.Add(&scene.Mesh{
		Name: "connector", Kind: scene.Box, Size: mgl64.Vec3{0.6, 0.3, 0.8},
		Position: mgl64.Vec3{0, 0, 1.9},
		Color:    rgb(0xb0b0c0),
	})
	g.Add(&scene.Mesh{
		Name: "led", Kind: scene.Sphere, Size: mgl64.Vec3{0.06, 0, 0},
		Position: mgl64.Vec3{0.35, 0.26, -1},
		Color:    rgb(0x00ff88), Emissive: 1,
	})
	g.Add(&scene.Mesh{
		Name: "logo", Kind: scene.Plane, Size: mgl64.Vec3{0.5, 0.5, 0},
		Position: mgl64.Vec3{0, 0.26, 0},
		Rotation: mgl64.Vec3{-math.Pi / 2, 0, 0},
		Color:    pink, Emissive: 0.3,
	})
	return g
}

func USBBox() *scene.Group {
	g := scene.NewGroup("usbbox")
	g.Add(&scene.Mesh{
		Name: "body", Kind: scene.Box, Size: mgl64.Vec3{3, 1.2, 3},
		Color:     rgb(0x3a2a1a),
		EdgeColor: cyan, EdgeOpacity: 0.3,
	})
	g.Add(&scene.Mesh{
		Name: "lid", Kind: scene.Box, Size: mgl64.Vec3{3.1, 0.2, 3.1},
		Position: mgl64.Vec3{0, 0.7, 0},
		Color:    rgb(0x4a3a2a),
	})
	g.Add(&scene.Mesh{
		Name: "cushion", Kind: scene.Box, Size: mgl64.Vec3{1.5, 0.3, 0.8},
		Position: mgl64.Vec3{0, 0.3, 0},
		Color:    rgb(0x1a0a00),
	})
	g.Add(&scene.Mesh{
		Name: "usb", Kind: scene.Box, Size: mgl64.Vec3{0.8, 0.2, 0.4},
		Position: mgl64.Vec3{0, 0.35, 0},
		Color:    rgb(0x5a5a6a),
	})
	g.Add(&scene.Mesh{
		Name: "logo", Kind: scene.Circle, Size: mgl64.Vec3{0.4, 0, 0},
		Position: mgl64.Vec3{0, 0.81, 0},
		Rotation: mgl64.Vec3{-math.Pi / 2, 0, 0},
		Color:    pink, Emissive: 0.2,
	})
	return g
}

var printTints = []uint32{0xddd0f0, 0xd0e0f0, 0xf0d0d0, 0xd0f0d0, 0xf0e0d0}

// Prints is a loose stack of photos. The jitter is seeded so every build
// of the stack looks the same.
func Prints() *scene.Group {
	rng := rand.New(rand.NewPCG(5, 7))
	g := scene.NewGroup("prints")
	for i, tint := range printTints {
		rot := mgl64.Vec3{0, (rng.Float64() - 0.5) * 0.05, (rng.Float64() - 0.5) * 0.1}
		y := float64(i) * 0.04
		g.Add(&scene.Mesh{
			Name: "photo", Kind: scene.Box, Size: mgl64.Vec3{3, 2.2, 0.03},
			Position: mgl64.Vec3{0, y, 0},
			Rotation: rot,
			Color:    rgb(0xffffff),
		})
		g.Add(&scene.Mesh{
			Name: "image", Kind: scene.Plane, Size: mgl64.Vec3{2.7, 1.9, 0},
			Position: mgl64.Vec3{0, y, 0.016},
			Rotation: rot,
			Color:    rgb(tint),
		})
	}
	return g
}

// Hero is the floating album of the landing section with its point cloud.
func Hero(rng *rand.Rand) *scene.Group {
	g := scene.NewGroup("hero")
	g.Add(&scene.Mesh{
		Name: "body", Kind: scene.Box, Size: mgl64.Vec3{3, 4, 0.4},
		Color:     rgb(0x1a0a2a),
		EdgeColor: cyan, EdgeOpacity: 0.4,
	})
	g.Add(&scene.Mesh{
		Name: "cover", Kind: scene.Plane, Size: mgl64.Vec3{2.5, 3.5, 0},
		Position: mgl64.Vec3{0, 0, 0.21},
		Color:    rgb(0x2a1a3a), Opacity: 0.8,
	})
	g.Add(&scene.Mesh{
		Name: "spine", Kind: scene.Box, Size: mgl64.Vec3{0.15, 4, 0.45},
		Position: mgl64.Vec3{-1.575, 0, 0},
		Color:    pink, Emissive: 0.2,
	})
	cloud := make([]mgl64.Vec3, 50)
	for i := range cloud {
		cloud[i] = mgl64.Vec3{(rng.Float64() - 0.5) * 8, (rng.Float64() - 0.5) * 8, (rng.Float64() - 0.5) * 8}
	}
	g.Add(&scene.Mesh{
		Name: "particles", Kind: scene.Points, Cloud: cloud, PointSize: 1.5,
		Color: cyan, Opacity: 0.6,
	})
	return g
}

// Lights is the three-point rig shared by the hero and the gallery viewer.
func Lights(s *scene.Scene) {
	s.AddLight(scene.Light{Color: rgb(0x404060), Intensity: 0.6, Ambient: true})
	s.AddLight(scene.Light{Color: pink, Intensity: 1.2, Position: mgl64.Vec3{5, 5, 5}})
	s.AddLight(scene.Light{Color: cyan, Intensity: 0.8, Position: mgl64.Vec3{-5, -2, 5}})
	s.AddLight(scene.Light{Color: rgb(0x7b2dff), Intensity: 0.5, Position: mgl64.Vec3{0, 3, -5}})
}
