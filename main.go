package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"wedding/config"
	"wedding/database"
	"wedding/middleware"
	"wedding/router"
	"wedding/store"
)

// @title 婚礼策划系统 API
// @version 1.0
// @description 婚礼策划后端服务，提供宾客、预算、任务、供应商、预约和座位管理接口
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("婚礼策划系统 v1.0.0")
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	// 打印配置信息
	config.PrintConfig()

	// 初始化存储
	var st store.Store
	switch cfg.Storage.Driver {
	case "mysql":
		db, err := database.Init(cfg)
		if err != nil {
			log.Fatalf("数据库初始化失败: %v", err)
		}
		st = store.NewGorm(db, cfg.Session.TTL)
		log.Println("使用 MySQL 存储")
	default:
		st = store.NewMemory(cfg.Session.TTL)
		log.Println("使用内存存储（重启后数据丢失）")
	}
	defer st.Close()

	// 初始化 JWT
	middleware.InitJWT(cfg)

	// 定期清理过期会话
	go func() {
		ticker := time.NewTicker(cfg.Session.SweepEvery)
		defer ticker.Stop()
		for range ticker.C {
			n, err := st.Sessions().DeleteExpired()
			if err != nil {
				log.Printf("清理过期会话失败: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("已清理 %d 个过期会话", n)
			}
		}
	}()

	// 设置路由
	r := router.SetupRouter(cfg, st)

	// 启动服务器
	log.Printf("==========================================")
	log.Printf("  💍 婚礼策划系统已启动")
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API接口:  http://localhost%s/api/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
