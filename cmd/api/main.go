package main

import (
	"fmt"
	"net/http"

	"github.com/dawam-hr/attendance-engine-go/internal/config"
	"github.com/dawam-hr/attendance-engine-go/internal/engine"
	appHTTP "github.com/dawam-hr/attendance-engine-go/internal/handler/http"
	overtimeService "github.com/dawam-hr/attendance-engine-go/internal/service/overtime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	engineCfg := engine.Config{
		RegularDailyHours: cfg.Engine.RegularDailyHours,
		RamadanDailyHours: cfg.Engine.RamadanDailyHours,
	}
	tiebreak := engine.ParseLeaveTiebreak(cfg.Engine.LeaveTiebreak)

	overtimeSvc := overtimeService.NewOvertimeService(engineCfg, tiebreak)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)

	router := appHTTP.NewRouter(
		overtimeHandler,
		cfg.App.Env,
		cfg.CORS.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
