package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"golibrary/config"
	"golibrary/internal/pkg/database"
	"golibrary/internal/pkg/logger"
)

// gooseLogger encaminha as mensagens do goose para o nosso logger.
type gooseLogger struct {
	log logger.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Info(fmt.Sprintf(format, v...), nil)
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.Fatal("goose falhou.", fmt.Errorf(format, v...))
}

func main() {
	log := logger.NewLogger(os.Getenv("LOG_LEVEL"))

	if err := godotenv.Load(); err != nil {
		log.Warn("Arquivo .env não encontrado. Usando apenas as variáveis do ambiente.", nil)
	}

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./sql", "diretório com os arquivos de migração")
	flag.Parse()

	databaseURL, err := config.LoadDatabaseURL()
	if err != nil {
		log.Fatal("Configuração inválida.", err)
	}

	db, err := database.NewPostgresDB(databaseURL)
	if err != nil {
		log.Fatal("goose: falha ao conectar ao banco de dados.", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("goose: falha ao fechar a conexão.", err)
		}
	}()

	goose.SetLogger(gooseLogger{log: log})
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("goose: dialeto não suportado.", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command, args := arguments[0], arguments[1:]

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatal(fmt.Sprintf("goose %s falhou.", command), err)
	}
	log.Info(fmt.Sprintf("goose %s concluído.", command), nil)
}
