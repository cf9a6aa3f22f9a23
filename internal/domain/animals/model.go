package animals

import (
	"net/http"
	"strings"

	"pawbuddy-client/internal/domain/intents"
	"pawbuddy-client/internal/platform/validate"
)

// Animal es un animal disponible para adopción.
type Animal struct {
	ID      int    `json:"id"`
	Name    string `json:"nome"`
	Breed   string `json:"raca"`
	Age     string `json:"idade"` // texto libre: "2 anos", "6 meses"
	Gender  string `json:"genero"`
	Species string `json:"especie"`
	Color   string `json:"cor"`

	// Image es el nombre del archivo; se sirve en /imagens/{Image}.
	Image string `json:"imagem,omitempty"`

	Intents []intents.Intent `json:"intencoesdeAdocao,omitempty"`
}

// ImagePath es el path relativo de la imagen ("" si no tiene).
func (a Animal) ImagePath() string {
	if strings.TrimSpace(a.Image) == "" {
		return ""
	}
	if strings.HasPrefix(a.Image, "http://") || strings.HasPrefix(a.Image, "https://") || strings.HasPrefix(a.Image, "/") {
		return a.Image
	}
	return "/imagens/" + a.Image
}

func (a Animal) Ref() intents.AnimalRef {
	return intents.AnimalRef{ID: a.ID, Name: a.Name, Species: a.Species, Breed: a.Breed}
}

// Image es el archivo que acompaña un alta o edición.
type Image struct {
	Filename string
	Data     []byte
}

func (i *Image) Empty() bool {
	return i == nil || len(i.Data) == 0
}

// IsJPEG mira los bytes, no la extensión.
func (i *Image) IsJPEG() bool {
	return !i.Empty() && http.DetectContentType(i.Data) == "image/jpeg"
}

// Form es el formulario de alta/edición de un animal.
type Form struct {
	Name    string
	Breed   string
	Age     string
	Gender  string
	Species string
	Color   string
	Image   *Image
}

// FormFrom precarga el formulario de edición con el animal actual.
func FormFrom(a Animal) Form {
	return Form{
		Name:    a.Name,
		Breed:   a.Breed,
		Age:     a.Age,
		Gender:  a.Gender,
		Species: a.Species,
		Color:   a.Color,
	}
}

// Validate: en alta la imagen es obligatoria; en edición es opcional y si
// no viene se conserva la actual.
func (f Form) Validate(creating bool) error {
	v := &validate.Validator{}
	v.Required("nome", f.Name).MaxLen("nome", f.Name, 100).
		Required("raca", f.Breed).
		Required("idade", f.Age).
		Required("genero", f.Gender).
		Required("especie", f.Species).
		Required("cor", f.Color)

	switch {
	case creating && f.Image.Empty():
		v.Custom("imagem", true, "An image is required")
	case !f.Image.Empty() && !f.Image.IsJPEG():
		v.Custom("imagem", true, "Image must be a JPEG")
	}
	return v.Err()
}

// Animal arma la entidad con los campos de texto normalizados.
func (f Form) Animal() Animal {
	return Animal{
		Name:    strings.TrimSpace(f.Name),
		Breed:   strings.TrimSpace(f.Breed),
		Age:     strings.TrimSpace(f.Age),
		Gender:  strings.TrimSpace(f.Gender),
		Species: strings.TrimSpace(f.Species),
		Color:   strings.TrimSpace(f.Color),
	}
}

// Fields devuelve los campos de texto en el orden del backend.
func (f Form) Fields() [][2]string {
	a := f.Animal()
	return [][2]string{
		{"nome", a.Name},
		{"raca", a.Breed},
		{"idade", a.Age},
		{"genero", a.Gender},
		{"especie", a.Species},
		{"cor", a.Color},
	}
}
