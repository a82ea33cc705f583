package main

import (
	"flag"
	"log"
	"os"

	"github.com/SidorenkoTatiana/foodgram-st/config"
	"github.com/SidorenkoTatiana/foodgram-st/internal/database"
	"github.com/SidorenkoTatiana/foodgram-st/internal/ingredient"
)

// 从 CSV 或 JSON 文件批量导入食材，已存在的（名称+单位）跳过
func main() {
	filePath := flag.String("file", "", "食材文件路径（.csv 或 .json）")
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("必须通过 -file 指定食材文件")
	}

	config.MustLoad(*configPath)
	database.InitDatabase()

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("打开文件失败: %v", err)
	}
	defer f.Close()

	rows, err := ingredient.ParseImportFile(f, *filePath)
	if err != nil {
		log.Fatalf("解析文件失败: %v", err)
	}

	svc := ingredient.NewIngredientService(ingredient.NewIngredientRepository(database.GetDB()))
	result, err := svc.Import(rows)
	if err != nil {
		log.Fatalf("导入失败: %v", err)
	}

	log.Printf("导入完成: 共 %d 条，新建 %d 条，跳过 %d 条", result.Total, result.Created, result.Skipped)
}
