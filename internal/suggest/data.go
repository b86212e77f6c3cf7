package suggest

type airport struct {
	Name string
	IATA string
	City string
}

var airports = []airport{
	{"Aeroporto Internacional de Guarulhos", "GRU", "São Paulo"},
	{"Aeroporto de Congonhas", "CGH", "São Paulo"},
	{"Aeroporto Internacional de Viracopos", "VCP", "Campinas"},
	{"Aeroporto Internacional do Galeão", "GIG", "Rio de Janeiro"},
	{"Aeroporto Santos Dumont", "SDU", "Rio de Janeiro"},
	{"Aeroporto Internacional de Brasília", "BSB", "Brasília"},
	{"Aeroporto Internacional de Confins", "CNF", "Belo Horizonte"},
	{"Aeroporto Internacional de Salvador", "SSA", "Salvador"},
	{"Aeroporto Internacional do Recife", "REC", "Recife"},
	{"Aeroporto Internacional de Fortaleza", "FOR", "Fortaleza"},
	{"Aeroporto Internacional Afonso Pena", "CWB", "Curitiba"},
	{"Aeroporto Internacional Salgado Filho", "POA", "Porto Alegre"},
	{"Aeroporto Internacional de Belém", "BEL", "Belém"},
	{"Aeroporto Internacional Eduardo Gomes", "MAO", "Manaus"},
	{"Aeroporto Internacional de Goiânia", "GYN", "Goiânia"},
	{"Aeroporto Internacional Hercílio Luz", "FLN", "Florianópolis"},
	{"Aeroporto Internacional de Natal", "NAT", "Natal"},
	{"Aeroporto Internacional Zumbi dos Palmares", "MCZ", "Maceió"},
	{"Aeroporto Internacional de São Luís", "SLZ", "São Luís"},
	{"Aeroporto de Vitória", "VIX", "Vitória"},
	{"Aeroporto Internacional de João Pessoa", "JPA", "João Pessoa"},
	{"Aeroporto de Teresina", "THE", "Teresina"},
	{"Aeroporto de Aracaju", "AJU", "Aracaju"},
	{"Aeroporto Internacional de Cuiabá", "CGB", "Cuiabá"},
	{"Aeroporto Internacional de Campo Grande", "CGR", "Campo Grande"},
	{"Aeroporto Internacional de Porto Velho", "PVH", "Porto Velho"},
	{"Aeroporto Internacional de Boa Vista", "BVB", "Boa Vista"},
	{"Aeroporto Internacional de Rio Branco", "RBR", "Rio Branco"},
	{"Aeroporto Internacional de Foz do Iguaçu", "IGU", "Foz do Iguaçu"},
	{"Aeroporto Internacional de Navegantes", "NVT", "Navegantes"},
}

var cities = []string{
	"São Paulo",
	"Rio de Janeiro",
	"Belo Horizonte",
	"Brasília",
	"Salvador",
	"Fortaleza",
	"Curitiba",
	"Manaus",
	"Recife",
	"Porto Alegre",
	"Belém",
	"Goiânia",
	"Florianópolis",
	"Campo Grande",
	"Cuiabá",
	"Palmas",
	"Maceió",
	"Natal",
	"João Pessoa",
	"Aracaju",
	"Teresina",
	"São Luís",
	"Vitória",
	"Campinas",
	"Santos",
	"Petrópolis",
	"Gramado",
	"Foz do Iguaçu",
	"Porto Seguro",
	"Búzios",
	"Paraty",
	"Bonito",
	"Fernando de Noronha",
	"Jericoacoara",
	"Ouro Preto",
}
