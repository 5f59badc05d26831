package game

// Card names of the products section, in display order. Some of them are
// catalog aliases.
var productCards = []string{"album", "photobox", "usb", "usbbox", "prints"}

type packageInfo struct {
	Title    string
	Price    string
	Features []string
}

var packages = []packageInfo{
	{Title: "Esencial", Price: "$1,990", Features: []string{"Album 20 paginas", "50 fotos impresas", "USB 16 GB"}},
	{Title: "Premium", Price: "$3,490", Features: []string{"Album 40 paginas", "Caja de fotolibro", "USB 32 GB grabada"}},
	{Title: "Coleccion", Price: "$5,290", Features: []string{"Album 60 paginas", "Caja USB premium", "100 fotos impresas"}},
}

type stat struct {
	Target int
	Label  string
}

var stats = []stat{
	{Target: 500, Label: "Albumes creados"},
	{Target: 1200, Label: "Clientes felices"},
	{Target: 100, Label: "Satisfaccion"},
	{Target: 15, Label: "Anos de experiencia"},
}

type contact struct {
	Label string
	Value string
}

var contacts = []contact{
	{Label: "Email", Value: "hola@invitados.org"},
	{Label: "Telefono", Value: "+52 55 1234 5678"},
	{Label: "Ubicacion", Value: "Ciudad de Mexico"},
}

const (
	heroLine1 = "Recuerdos que"
	heroLine2 = "cobran vida"
	heroSub   = "Albumes, cajas y USB personalizadas, disenados para durar."
)

// Section subtitles, keyed by section id.
var subtitles = map[string]string{
	secProducts: "Cada pieza se fabrica a mano con materiales premium.",
	secGallery:  "Arrastra para girar. Algunos productos muestran su vista previa en vivo.",
	secPackages: "Combina productos y ahorra.",
	secContact:  "Cuentanos tu idea y te respondemos en menos de 24 horas.",
}
