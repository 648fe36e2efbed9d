package shared

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
)

type HttpService struct {
	Name    string `json:"name"`
	Port    string `json:"port"`
	Prefork bool   `json:"prefork"`
	App     *fiber.App
}

func NewHttpService(name string, port string, prefork bool) *HttpService {
	return &HttpService{
		Name:    name,
		Port:    port,
		Prefork: prefork,
	}
}

func (h *HttpService) Init() {
	h.App = fiber.New(fiber.Config{
		AppName: h.Name,
		Prefork: h.Prefork,
	})
}

func (h *HttpService) Use(args ...interface{}) {
	h.App.Use(args...)
}

// Start blocks serving requests until SIGINT/SIGTERM, then shuts the
// listener down and runs onShutdown.
func (h *HttpService) Start(onShutdown func()) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		h.App.Shutdown()
	}()

	err := h.App.Listen(":" + h.Port)
	if onShutdown != nil {
		onShutdown()
	}
	return err
}
