package server

// Server объединяет HTTP серверы отдельных сущностей: цены и отели.
type Server struct {
	PricesServer
	HotelsServer
}

func NewServer(
	pricesServer PricesServer,
	hotelsServer HotelsServer,
) Server {
	return Server{
		PricesServer: pricesServer,
		HotelsServer: hotelsServer,
	}
}
