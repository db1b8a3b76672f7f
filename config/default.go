package config

// DefaultConfigYAML 内置默认配置
// 部署时可通过外部 config.yaml 或 WEDDING_* 环境变量覆盖
var DefaultConfigYAML = []byte(`server:
  port: ":8080"
  mode: "debug"
  base_url: "http://localhost:8080"

storage:
  driver: "memory"

database:
  host: "localhost"
  port: "3306"
  username: "wedding"
  password: "wedding"
  dbname: "wedding"
  charset: "utf8mb4"

session:
  cookie_name: "wedding_session"
  expire_days: 7
  sweep_hours: 24

jwt:
  secret: "change-me-in-production"
  expire_hours: 24

email:
  enabled: false
  host: "smtp.example.com"
  port: 465
  username: ""
  password: ""
  from: "婚礼策划系统"
`)
